// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Values.Directory == "" || cfg.Values.DefaultEnvironment == "" {
		return ErrInvalidValuesConfigs
	}

	return nil
}
