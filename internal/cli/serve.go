package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"twa-synth/internal/export"
	httpapi "twa-synth/internal/http"
	"twa-synth/internal/service"
	"twa-synth/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr string

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the dataset HTTP API",
		RunE:  runServe,
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from HTTP_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	gen, engine, err := buildPipeline(logger)
	if err != nil {
		return err
	}

	datasets := store.NewDatasetStore()
	exporter := export.NewExporter(logger)
	svc := service.NewDatasetService(gen, engine, exporter, datasets, logger)

	router := httpapi.NewRouter(logger)
	router.RegisterDatasetRoutes(httpapi.NewDatasetHandler(svc, logger))

	addr := serveAddr
	if addr == "" {
		addr = cfg.HTTP.Addr
	}
	server := service.NewServer(addr, router, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("HTTP server failed", zap.Error(err))
		return err
	case sig := <-quit:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
		return err
	}
	logger.Info("Server stopped")
	return nil
}
