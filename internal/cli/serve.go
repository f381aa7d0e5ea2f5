package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/hanoi/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Serve listens on addr and serves the HTTP API until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ServeListener(ctx, app, ln)
}

// ServeListener serves the HTTP API on ln and shuts down gracefully when ctx is done.
func ServeListener(ctx context.Context, app *App, ln net.Listener) error {
	handler, err := httpAdapter.NewHandler(app.Solver,
		httpAdapter.WithLogger(app.Logger),
		httpAdapter.WithMetrics(promhttp.HandlerFor(app.Registry, promhttp.HandlerOpts{})),
	)
	if err != nil {
		ln.Close()
		return err
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		app.Logger.Info("HTTP server listening", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		app.Logger.Info("HTTP server stopped")
		return nil
	})
	return g.Wait()
}
