package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Run serves until ctx is cancelled, then shuts down gracefully.
func (srv *HTTPServer) Run(ctx context.Context) error {
	addr := net.JoinHostPort(srv.host, strconv.Itoa(srv.port))
	server := &http.Server{
		Addr:    addr,
		Handler: srv.gin,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		srv.l.Infof(ctx, "HTTP server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		srv.l.Info(context.Background(), "Shutting down HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
