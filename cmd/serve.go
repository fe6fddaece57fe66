package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/guttosm/b3charts/config"
	"github.com/guttosm/b3charts/internal/app"
	"github.com/guttosm/b3charts/internal/logger"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API and the chart stream",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port == "" {
				port = config.AppConfig.Server.Port
			}
			logger.L().Info().Str("feed", config.AppConfig.Feed.Provider).Str("source", config.AppConfig.Chart.Source).Msg("starting API server")

			router, cleanup, err := app.InitializeApp()
			if err != nil {
				return err
			}

			server := startServer(router, port)
			gracefulShutdown(cmd.Context(), server, cleanup)
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "Port for the API server (default SERVER_PORT)")
	return cmd
}

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// There is no WriteTimeout; chart streams stay open for as long as the client listens.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT/SIGTERM or for ctx to end, then shuts the
// server down and runs cleanup.
//
// Parameters:
//   - ctx (context.Context): parent context; cancelling it also triggers shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., DB connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	if ctx == nil {
		ctx = context.Background()
	}
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
	case <-ctx.Done():
	}
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Error().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}
