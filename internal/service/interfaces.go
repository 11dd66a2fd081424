package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/strata-config/strata/models"
)

// ResolutionService answers configuration queries for the HTTP API and the
// CLI: environment discovery, raw layer access, and full resolution.
type ResolutionService interface {
	// Environments lists the environments known to the values source.
	Environments(ctx context.Context) ([]string, error)

	// Values returns one raw configuration layer. The identifier "base"
	// selects the base document; anything else selects an overlay.
	Values(ctx context.Context, environment string) (models.Tree, error)

	// Resolve produces the final configuration for the environment; an
	// empty environment selects the configured default. setExpr is an
	// optional "--set" style override expression applied as the
	// highest-precedence layer; pass "" for none.
	Resolve(ctx context.Context, environment string, setExpr string) (*models.ResolvedConfig, error)
}

// AppInfoService exposes build metadata to the transport layer.
type AppInfoService interface {
	// GetAppVersion returns the application's semantic version string.
	GetAppVersion(ctx context.Context) string
}
