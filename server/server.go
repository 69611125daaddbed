package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run serves handler on port until ctx is cancelled or the process receives
// SIGINT/SIGTERM, then drains in-flight requests.
func Run(ctx context.Context, port int, handler http.Handler, logger *zap.Logger) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(sig)

	srv := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(port)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return run(ctx, sig, srv, logger)
}

func run(ctx context.Context, sig <-chan os.Signal, srv *http.Server, logger *zap.Logger) error {
	eg, groupCtx := errgroup.WithContext(ctx)

	logger.Info("server starting", zap.String("addr", srv.Addr))

	eg.Go(func() error {
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			logger.Info("server stopping", zap.String("addr", srv.Addr))

			timeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(timeCtx); err != nil {
				logger.Warn("server shutdown", zap.Error(err))
			}
		}()

		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case s := <-sig:
			logger.Info("signal received", zap.String("signal", s.String()))
			return nil
		}
	})

	err := eg.Wait()
	logger.Info("server stopped")
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
