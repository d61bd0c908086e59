package server

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/comicgate/comicgate/internal/config"
	"github.com/comicgate/comicgate/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer constructs the HTTP server for the given handler and
// configuration.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handler, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("Launching HTTP server")
	go s.httpServer.RunServer()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
