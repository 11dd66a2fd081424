// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package values

import "errors"

// Sentinel errors returned by the document and merge functions. Callers match
// against them with [errors.Is]; the wrapped message carries the offending
// document path.
var (
	// ErrInvalidStructure indicates that a key's type differs incompatibly
	// between two layers (one layer holds a mapping, the other a scalar or
	// sequence), or that a document is not a mapping at its top level.
	ErrInvalidStructure = errors.New("invalid document structure")

	// ErrInvalidSetValue indicates a malformed `--set` override expression
	// (missing '=', empty path, or an empty path segment).
	ErrInvalidSetValue = errors.New("invalid set override")
)
