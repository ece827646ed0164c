package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/beers/internal/server"
	"github.com/desertthunder/beers/internal/shared"
	"github.com/desertthunder/beers/internal/tracker"
	"github.com/desertthunder/beers/internal/web"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the web interface until ctx is cancelled.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	if err := r.configure(cmd); err != nil {
		return err
	}

	cfg := r.config.Server
	if cmd.IsSet("host") {
		cfg.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		cfg.Port = cmd.Int("port")
	}

	t, closeStore, err := r.openTracker(ctx)
	if err != nil {
		return err
	}
	defer closeStore()

	logger := shared.WithLogger(r.logger, "surface", "web")
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r.router(t, cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// router wires the middleware stack and the collection pages.
func (r *Runner) router(t *tracker.Tracker, cfg shared.ServerConfig, logger *log.Logger) http.Handler {
	router := server.NewBasicRouter()
	router.Use(
		server.RequestID(),
		server.Logging(logger),
		server.RateLimit(cfg.RateLimit, cfg.Burst),
	)
	router.Handler(web.NewHandler(t, web.Options{
		Dates:         r.dates(),
		ConfirmDelete: r.config.Display.ConfirmDelete,
		Logger:        logger,
	}))
	return router
}
