package catalog

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// FileEnv names the catalog file loaded instead of the built-in items.
const FileEnv = "ITEMS_CATALOG_FILE"

type fileItem struct {
	Name        string `toml:"name"`
	Rarity      string `toml:"rarity"`
	Description string `toml:"description"`
	Power       int    `toml:"power"`
}

type fileCatalog struct {
	Items []fileItem `toml:"item"`
}

// LoadFile reads a TOML catalog ([[item]] tables). Unknown keys are rejected.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var fc fileCatalog
	dec := toml.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(fc.Items))
	for _, it := range fc.Items {
		entries = append(entries, Entry{
			Name: it.Name,
			Record: Record{
				Rarity:      Rarity(it.Rarity),
				Description: it.Description,
				Power:       it.Power,
			},
		})
	}
	c, err := New(entries...)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// ProvideCatalog is the Fx provider: the file named by ITEMS_CATALOG_FILE when
// set, the built-in items otherwise.
func ProvideCatalog(zl *zap.Logger) (*Catalog, error) {
	path := os.Getenv(FileEnv)
	if path == "" {
		zl.Info("catalog loaded", zap.String("source", "builtin"), zap.Int("items", Default().Len()))
		return Default(), nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	zl.Info("catalog loaded", zap.String("source", path), zap.Int("items", c.Len()))
	return c, nil
}
