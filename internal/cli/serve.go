package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ReservationEngine/internal/api"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			a, err := newApp(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer a.Close()

			cfg := a.cfg
			a.log.Info("Starting reservation engine (storage=%s, policy=%s, hold=%v)",
				cfg.Storage.Driver, cfg.Engine.Policy(), cfg.Engine.HoldPeriod())

			metricsOpts := api.MetricsOptions{Path: cfg.Metrics.Path}
			if a.metrics != nil {
				metricsOpts.Collector = a.metrics
				a.log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
			}

			addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
			srv := &http.Server{
				Addr:         addr,
				Handler:      api.NewRouter(a.engine, metricsOpts, a.log),
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
				IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.log.Info("Starting server on %s", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("server failed: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			a.log.Info("Shutting down server...")

			shutdownCtx, shutdownCancel := context.WithTimeout(
				context.Background(),
				time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
			)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.log.Error("Server forced to shutdown: %v", err)
				return err
			}

			a.log.Info("Server stopped gracefully")
			return nil
		},
	}
}
