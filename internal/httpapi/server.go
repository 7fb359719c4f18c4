// HTTP server lifecycle with graceful shutdown.
package httpapi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// shutdownTimeout bounds how long in-flight requests may drain on shutdown.
const shutdownTimeout = 5 * time.Second

// Server wraps the gin router in an http.Server with graceful shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer builds a Server listening on addr, serving the given store.
func NewServer(addr string, store types.Store, logger *slog.Logger) *Server {
	if addr == "" {
		addr = types.DefaultListenAddr
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		srv: &http.Server{
			Addr:    addr,
			Handler: NewRouter(store, logger),
		},
		logger: logger,
	}
}

// Run serves until ctx is canceled, then drains in-flight requests for up
// to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
