// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

// Package adapter provides transport-layer abstractions for communicating
// with a strata configuration server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/strata-config/strata/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with a strata
// server. Implementations are responsible for serialisation and for mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// Environments lists the environments known to the server.
	Environments(ctx context.Context) ([]string, error)

	// Values fetches one raw configuration layer from the server. The
	// identifier "base" selects the base document.
	Values(ctx context.Context, environment string) (models.Tree, error)

	// Resolved fetches the fully merged configuration for the environment.
	// setExpr is an optional "--set" style override expression forwarded to
	// the server; pass "" for none.
	Resolved(ctx context.Context, environment string, setExpr string) (*models.ResolvedConfig, error)

	// Version returns the server's build version string.
	Version(ctx context.Context) (string, error)
}
