package handler

import (
	"github.com/strata-config/strata/internal/config"
	"github.com/strata-config/strata/internal/handler/http"
	"github.com/strata-config/strata/internal/logger"
	"github.com/strata-config/strata/internal/service"
)

// Handlers aggregates the transport handlers exposed by the application.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers wires the transport handlers enabled by the server config.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
