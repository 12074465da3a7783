package cmd

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	httpapi "todo-store.com/todo-store/internal/http"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Serves the task store as a JSON API for the browser front-end",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			store, cfg, closeStore := openStore(ctx)
			defer closeStore()

			e := echo.New()
			e.HideBanner = true

			handler := httpapi.NewHandler(store, httpapi.Settings{
				StorageDriver:      cfg.StorageDriver,
				TimeZone:           cfg.Location().String(),
				RateLimitPerMinute: cfg.RateLimit,
				BulkTrashTimestamp: cfg.BulkTrashTimestamp,
			}, cfg.Location())
			httpapi.Register(e, handler, cfg.RateLimit)

			go func() {
				log.Printf("HTTP server listening on %s", cfg.AppURL)
				if err := e.Start(cfg.AppURL); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Printf("server stopped: %v", err)
					stop()
				}
			}()

			<-ctx.Done()

			shutdownCtx, cancel := context.WithTimeout(
				context.Background(),
				time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
			)
			defer cancel()

			if err := e.Shutdown(shutdownCtx); err != nil {
				log.Printf("shutdown error: %v", err)
			}

			log.Println("HTTP server shut down gracefully")
			return nil
		},
	}
}
