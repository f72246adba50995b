package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/logger"
	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	logger     logger.AdsLoggerInterface
}

func NewServer(config configs.ServerConfig, handler http.Handler, log logger.AdsLoggerInterface) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:           ":" + config.Port,
			Handler:        handler,
			MaxHeaderBytes: config.MaxHeaderBytes,
			ReadTimeout:    config.ReadTimeout,
			WriteTimeout:   config.WriteTimeout,
		},
		logger: log,
	}
}

// Run blocks until the server stops; a graceful Shutdown is not reported as an error.
func (s *Server) Run() error {
	s.logger.Info("Starting server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
