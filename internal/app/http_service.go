package app

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/yallaorder-next/internal/logger"
	"github.com/yallaorder-next/internal/provider"
	"github.com/yallaorder-next/internal/router"
)

// HTTPService runs the API server.
type HTTPService struct {
	addr   string
	server *http.Server
}

// NewHTTPService builds the HTTP service from the container.
func NewHTTPService(container *provider.Container) *HTTPService {
	addr := net.JoinHostPort(container.Cfg.Server.Host, container.Cfg.Server.Port)
	return &HTTPService{
		addr: addr,
		server: &http.Server{
			Addr:    addr,
			Handler: router.New(container),
		},
	}
}

// Name identifies the service in logs.
func (s *HTTPService) Name() string { return "http" }

// Start begins serving in the background.
func (s *HTTPService) Start(_ context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	go func() {
		logger.Infow("http_server_listening", "addr", s.addr)
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("http_server_error", "error", err)
		}
	}()
	return nil
}

// Stop drains in-flight requests and shuts the server down.
func (s *HTTPService) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
