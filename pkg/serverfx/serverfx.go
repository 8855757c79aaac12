package serverfx

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/joeydtaylor/armory/pkg/bundlefx"
	"github.com/joeydtaylor/armory/pkg/core"
	"github.com/joeydtaylor/armory/pkg/manifest"
	"github.com/joeydtaylor/armory/pkg/middleware/logger"
	"github.com/joeydtaylor/armory/pkg/middleware/metrics"
	"github.com/joeydtaylor/armory/pkg/transport/httpx"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// ---------- Options ----------

// Options allow per-deployment env keys/defaults.
type Options struct {
	Service         string // for logs only
	ManifestEnv     string // e.g. "ARMORY_MANIFEST"
	DefaultManifest string // e.g. "manifest.toml"
	ListenAddrEnv   string // e.g. "SERVER_LISTEN_ADDRESS"
	DefaultListen   string // e.g. ":4000"
	TLSCertEnv      string // e.g. "SSL_SERVER_CERTIFICATE"
	TLSKeyEnv       string // e.g. "SSL_SERVER_KEY"
}

func DefaultOptions() Options {
	return Options{
		Service:         "armory",
		ManifestEnv:     "ARMORY_MANIFEST",
		DefaultManifest: "manifest.toml",
		ListenAddrEnv:   "SERVER_LISTEN_ADDRESS",
		DefaultListen:   ":4000",
		TLSCertEnv:      "SSL_SERVER_CERTIFICATE",
		TLSKeyEnv:       "SSL_SERVER_KEY",
	}
}

// ---------- Public Fx module ----------

func Module(opts Options) fx.Option {
	return fx.Options(
		fx.Supply(opts),
		fx.WithLogger(func(l *zap.Logger) fxevent.Logger { return &fxevent.ZapLogger{Logger: l} }),

		logger.Module,
		metrics.Module,

		// catalog + handler registration; must precede the router
		bundlefx.Module,

		fx.Provide(httpx.NewChi),
		fx.Provide(provideManifest),
		fx.Provide(fx.Annotate(provideRouter, fx.ResultTags(`name:"app"`))),

		fx.Invoke(registerHooks),
	)
}

// ---------- Router ----------

func provideManifest(o Options, zl *zap.Logger) (manifest.Config, error) {
	path := envOr(o.ManifestEnv, o.DefaultManifest)
	cfg, err := core.LoadConfig(path)
	if err != nil {
		zl.Error("manifest load failed", zap.Error(err), zap.String("path", path))
		return manifest.Config{}, err
	}
	return cfg, nil
}

type routerDeps struct {
	fx.In

	Cfg     manifest.Config
	LogMW   *logger.Middleware
	Metrics http.Handler `name:"metrics"`
	R       httpx.Router
	Log     *zap.Logger
}

func provideRouter(d routerDeps) http.Handler {
	for _, rt := range d.Cfg.Routes {
		if _, ok := core.Lookup(rt.Handler.Name); !ok {
			d.Log.Error("route handler not registered",
				zap.String("path", rt.Path),
				zap.String("handler", rt.Handler.Name),
			)
		}
	}
	return core.BuildRouter(d.Cfg, core.BuildDeps{
		LogMW:   d.LogMW,
		Metrics: d.Metrics,
		Router:  d.R,
	})
}

// ---------- Server lifecycle ----------

type serverDeps struct {
	fx.In
	Opts   Options
	Logger *zap.Logger
	App    http.Handler `name:"app"`
}

func registerHooks(lc fx.Lifecycle, d serverDeps) {
	addr := envOr(d.Opts.ListenAddrEnv, d.Opts.DefaultListen)
	cert := os.Getenv(d.Opts.TLSCertEnv)
	key := os.Getenv(d.Opts.TLSKeyEnv)

	srv := &http.Server{
		Addr:         addr,
		Handler:      d.App,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		TLSConfig:    &tls.Config{MinVersion: tls.VersionTLS13, MaxVersion: tls.VersionTLS13},
	}
	useTLS := fileExists(cert) && fileExists(key)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if useTLS {
				d.Logger.Info("server starting (TLS)",
					zap.String("service", d.Opts.Service),
					zap.String("addr", addr),
					zap.String("cert", cert),
				)
				go func() {
					if err := srv.ListenAndServeTLS(cert, key); err != nil && !errors.Is(err, http.ErrServerClosed) {
						d.Logger.Fatal("server failed", zap.Error(err))
					}
				}()
				return nil
			}
			d.Logger.Info("server starting (PLAINTEXT)",
				zap.String("service", d.Opts.Service),
				zap.String("addr", addr),
			)
			srv.TLSConfig = nil
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					d.Logger.Fatal("server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Opts.Service))
			return srv.Shutdown(ctx)
		},
	})
}

// ---------- helpers ----------

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
