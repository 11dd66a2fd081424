package service

import (
	"context"

	"github.com/strata-config/strata/internal/config"
	"github.com/strata-config/strata/internal/logger"
)

// appInfoService serves static build metadata about the running server.
type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService constructs the [AppInfoService] from application config.
// The version must be set, either in the config file or via build flags.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: cfg.Version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
