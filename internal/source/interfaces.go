package source

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

import (
	"context"

	"github.com/strata-config/strata/models"
)

// Source provides the raw configuration layers for one values set.
//
// Implementations must be safe for concurrent use and must return trees the
// caller may freely mutate.
type Source interface {
	// Environments lists the overlay identifiers available from this source
	// in sorted order.
	Environments(ctx context.Context) ([]string, error)

	// Base returns the base configuration layer. A source without a base
	// document returns an empty tree, not an error.
	Base(ctx context.Context) (models.Tree, error)

	// Overlay returns the overlay layer for the given environment.
	// Unknown environments fail with [ErrEnvironmentNotFound].
	Overlay(ctx context.Context, environment string) (models.Tree, error)
}
