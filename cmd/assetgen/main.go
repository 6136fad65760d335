// assetgen renders the site's favicons, touch icons and Open Graph image.
//
//	assetgen            # same as assetgen generate
//	assetgen generate --out docs/assets/images
//	assetgen serve --addr :8080
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youruser/siteassets/internal/api"
	"github.com/youruser/siteassets/internal/assets"
	"github.com/youruser/siteassets/internal/config"
)

func main() {
	cfg := config.Default()
	root := newRootCmd(&cfg)
	if err := root.Execute(); err != nil {
		log.WithError(err).Fatal("assetgen failed")
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	gen := &cobra.Command{
		Use:   "generate",
		Short: "Render every asset into the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Context(), cfg)
		},
	}
	gen.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "artifacts rendered in parallel")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Preview the generated directory over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cfg)
		},
	}
	serve.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")

	root := &cobra.Command{
		Use:           "assetgen",
		Short:         "Generate the site's static images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.Verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
		RunE: gen.RunE,
	}
	root.PersistentFlags().StringVarP(&cfg.OutputDir, "out", "o", cfg.OutputDir, "output directory")
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "log font fallback decisions")
	root.PersistentFlags().StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "URL encoded in the QR code")
	root.Flags().AddFlag(gen.Flags().Lookup("workers"))
	root.AddCommand(gen, serve)
	return root
}

func runGenerate(ctx context.Context, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	results, err := assets.Generate(ctx, cfg.OutputDir, assets.Manifest(cfg.SiteURL), cfg.Workers)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"dir": cfg.OutputDir, "count": len(results)}).Info("Assets written")
	return nil
}

func runServe(cfg *config.Config) error {
	r := gin.Default()
	api.RegisterRoutes(r, cfg.OutputDir, assets.Manifest(cfg.SiteURL))

	log.WithField("dir", cfg.OutputDir).Infof("starting preview on http://localhost%s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
