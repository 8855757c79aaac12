package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joeydtaylor/armory/pkg/catalog"
	"github.com/joeydtaylor/armory/pkg/core"
	"github.com/joeydtaylor/armory/pkg/identify"
	"github.com/joeydtaylor/armory/pkg/middleware/logger"
	"github.com/joeydtaylor/armory/pkg/serverfx"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "armory",
		Short:         "Magic item lookup service",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newLookupCmd(), newCatalogCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var manifestPath, listen string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := serverfx.DefaultOptions()
			if manifestPath != "" {
				opts.DefaultManifest = manifestPath
				opts.ManifestEnv = ""
			}
			if listen != "" {
				opts.DefaultListen = listen
				opts.ListenAddrEnv = ""
			}
			app := fx.New(serverfx.Module(opts))
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
	cmd.Flags().StringVar(&manifestPath, "manifest", "", "route manifest (default $ARMORY_MANIFEST or manifest.toml)")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default $SERVER_LISTEN_ADDRESS or :4000)")
	return cmd
}

func newLookupCmd() *cobra.Command {
	var catalogPath string
	var verbose bool
	cmd := &cobra.Command{
		Use:   "lookup NAME",
		Short: "Look up an item (or \"random\") without starting a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(catalogPath)
			if err != nil {
				return err
			}
			zl := zap.NewNop()
			if verbose {
				zl = logger.NewConsoleLog()
			}
			resp, err := identify.New(cat, zl).Handle(cmd.Context(), core.Request{
				Query: map[string]string{identify.ParamName: args[0]},
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", resp.StatusCode, resp.Body)
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("lookup %q: status %d", args[0], resp.StatusCode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "catalog file (default $"+catalog.FileEnv+" or built-in items)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log to stdout")
	return cmd
}

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog utilities",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "check FILE",
		Short: "Validate a catalog file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d items ok\n", args[0], cat.Len())
			return nil
		},
	})
	return cmd
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		path = os.Getenv(catalog.FileEnv)
	}
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}
