package http

import (
	"github.com/strata-config/strata/internal/logger"
	"github.com/strata-config/strata/internal/service"
)

// Handler groups the HTTP endpoints of the configuration server.
// Route registration lives in routes.go.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{services: services, logger: logger}
	logger.Info().Msg("http handler created")

	return h
}
