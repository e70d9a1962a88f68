package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

// RunHTTPServer serves the handler until SIGINT or SIGTERM arrives,
// then shuts down gracefully within the configured timeout.
func RunHTTPServer(logger zerolog.Logger, cfg config.HTTPConfig, handler http.Handler) error {
	server := &http.Server{
		Addr:    net.JoinHostPort(cfg.Host, cfg.Port),
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().
			Str("host", cfg.Host).
			Str("port", cfg.Port).
			Msg("setting up http server")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// kill (no params) by default sends syscall.SIGTERM,
	// kill -2 is syscall.SIGINT and kill -9 can't be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error().
			Err(err).
			Msg("failed to listen and serve http")
		return err
	case sig := <-quit:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutting down http server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	err := server.Shutdown(ctx)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to shutdown http server")
		return err
	}

	logger.Info().Msg("shut down http server")
	return nil
}
