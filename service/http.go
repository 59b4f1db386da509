// Package service runs the http side of the histogram tools:
// admin endpoints and the metrics listener.
package service

import (
	"context"
	"net/http"
	"time"

	pkgerr "github.com/pkg/errors"
	"go.uber.org/zap"
)

// A HTTP service with a graceful shutdown
type HTTP struct {
	handler      http.Handler
	closeTimeout time.Duration
	logger       *zap.Logger
}

// NewHTTP creates a http service with the handler
func NewHTTP(handler http.Handler, closeTimeout time.Duration, logger *zap.Logger) *HTTP {

	if logger == nil {
		logger = zap.NewNop()
	}

	return &HTTP{
		handler:      handler,
		closeTimeout: closeTimeout,
		logger:       logger,
	}
}

// ListenAndServe accepts connections on the address until the
// context is cancelled
func (s *HTTP) ListenAndServe(ctx context.Context, addr string) error {

	if addr == "" {
		return pkgerr.New("invalid server address")
	}

	svr := &http.Server{
		Addr:    addr,
		Handler: s.handler,
	}

	retval := make(chan error, 1)
	go func() {
		s.logger.Info("http service started", zap.String("addr", addr))
		retval <- svr.ListenAndServe()
	}()

	select {
	case err := <-retval:
		return err

	case <-ctx.Done():
		closeCtx, cancel := context.WithTimeout(context.Background(), s.closeTimeout)
		defer cancel()

		if err := svr.Shutdown(closeCtx); err != nil {
			s.logger.Error("failed to shutdown", zap.Error(err))
			return err
		}

		s.logger.Info("http service stopped", zap.String("addr", addr))
		return nil
	}
}
