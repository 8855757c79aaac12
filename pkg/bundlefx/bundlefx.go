// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/joeydtaylor/armory/pkg/catalog"
	"github.com/joeydtaylor/armory/pkg/identify"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module provides the catalog and the lookup handler, and registers the
// handler for manifest routes. Include it before anything that builds routes.
var Module = fx.Options(
	fx.Provide(catalog.ProvideCatalog),
	fx.Provide(provideIdentify),
	fx.Invoke(identify.Register),
)

func provideIdentify(cat *catalog.Catalog, zl *zap.Logger) *identify.Handler {
	return identify.New(cat, zl)
}
