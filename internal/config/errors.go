package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidValuesConfigs indicates invalid values-source settings
	// (for example, an empty values directory path).
	ErrInvalidValuesConfigs = errors.New("invalid values configuration")
)
