// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package resolve

import "errors"

var (
	// ErrMissingRequiredValue indicates that a path declared required has no
	// value in any layer and no default. The wrapped message names the path.
	// The error is fatal: no configuration is produced.
	ErrMissingRequiredValue = errors.New("missing required value")
)
