package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const shutdownTimeout = 10 * time.Second

// Run serves HTTP until SIGINT or SIGTERM, then drains in-flight requests.
func (srv *HTTPServer) Run() error {
	ctx := context.Background()

	httpSrv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", srv.host, srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	srv.logger.Infof(ctx, "HTTP server started on %s", httpSrv.Addr)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		srv.logger.Errorf(ctx, "HTTP server error: %v", err)
		return err
	case sig := <-ch:
		srv.logger.Info(ctx, sig)
	}

	srv.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	return httpSrv.Shutdown(shutdownCtx)
}
