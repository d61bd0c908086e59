// Package http implements the HTTP transport layer of the gateway.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"github.com/comicgate/comicgate/internal/logger"
	"github.com/comicgate/comicgate/internal/service"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
