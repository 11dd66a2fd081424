// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the strata
// server and CLI. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Values holds settings for the values source and the resolution policy.
	Values Values `envPrefix:"VALUES_"`

	// YAMLFilePath is the optional path to a YAML configuration file.
	// When non-empty, the file is parsed and merged below the values already
	// loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	YAMLFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint and the CLI
	// version command.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Values holds the values-source location and the resolution policy applied
// by the service layer.
type Values struct {
	// Directory is the path of the values directory: values.yaml plus one
	// values-<environment>.yaml per overlay.
	// Env: VALUES_DIRECTORY
	Directory string `env:"DIRECTORY"`

	// UpstreamURL, when set, makes the server fetch its layers from another
	// strata server instead of the local directory.
	// Env: VALUES_UPSTREAM_URL
	UpstreamURL string `env:"UPSTREAM_URL"`

	// DefaultEnvironment is the environment resolved when a request names
	// none (CLI -e flag omitted).
	// Env: VALUES_DEFAULT_ENVIRONMENT
	DefaultEnvironment string `env:"DEFAULT_ENVIRONMENT"`

	// RequiredPaths lists dotted paths that must hold a value in the
	// resolved tree (comma-separated in the environment variable).
	// Env: VALUES_REQUIRED_PATHS
	RequiredPaths []string `env:"REQUIRED_PATHS"`

	// ReplaceOnConflict switches the merge type-conflict policy from
	// erroring to overlay-wins replacement.
	// Env: VALUES_REPLACE_ON_CONFLICT
	ReplaceOnConflict bool `env:"REPLACE_ON_CONFLICT"`

	// DeleteOnNull makes explicit nulls in overlays delete base keys.
	// Env: VALUES_DELETE_ON_NULL
	DeleteOnNull bool `env:"DELETE_ON_NULL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withYAML().
		withDefaults().
		build()
}
