package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/adminapi"
	"github.com/talkincode/catalogd/internal/app"
	"github.com/talkincode/catalogd/internal/docs"
	"github.com/talkincode/catalogd/internal/webserver"
)

var (
	configFile string
	listenPort int
	noSeed     bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog API server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			if listenPort < 1 || listenPort > 65535 {
				return errors.Errorf("invalid port %d", listenPort)
			}
			cfg.Web.Port = listenPort
		}
		if noSeed {
			cfg.Catalog.Seed = false
		}
		return serve(cmd.Context(), cfg)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the YAML config file")
	serveCmd.Flags().IntVarP(&listenPort, "port", "p", 0, "Listen port, overrides web.port")
	serveCmd.Flags().BoolVar(&noSeed, "no-seed", false, "Start with empty collections")
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.AppConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}
	application := app.NewApplication(cfg)
	if err := application.Init(); err != nil {
		return errors.Wrap(err, "init application")
	}
	defer application.Release()

	if _, err := docs.Load(ctx); err != nil {
		zap.L().Warn("api document is invalid", zap.Error(err))
	}

	server := webserver.NewServer(cfg.Web)
	adminapi.Init(server, application)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "web server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zap.L().Info("shutting down")
		return server.Shutdown(context.Background())
	})
	return g.Wait()
}
