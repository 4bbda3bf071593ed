package server

import (
	"context"
	"net"
	"net/http"

	"github.com/MKhiriev/go-pooja-site/internal/config"
	"github.com/MKhiriev/go-pooja-site/internal/logger"
)

type server struct {
	httpServer *httpServer
	cfg        config.Server
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) Server {
	logger.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg.Address(), logger),
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *server) Listen() error {
	return s.httpServer.listen()
}

func (s *server) Addr() net.Addr {
	if s.httpServer.listener == nil {
		return nil
	}
	return s.httpServer.listener.Addr()
}

func (s *server) Run(ctx context.Context) error {
	if s.httpServer.listener == nil {
		return ErrNotListening
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")

	shutdownCtx := context.Background()
	if s.cfg.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.cfg.ShutdownTimeout)
		defer cancel()
	}

	if err := s.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	return s.httpServer.shutdown(ctx)
}
