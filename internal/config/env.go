// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Fields are mapped
// through the `env` and `envPrefix` struct tags on [StructuredConfig] and
// its nested types; variables that are not set leave the field untouched,
// so environment values layer on top of file and flag values.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse environment config: %w", err)
	}

	return nil
}
