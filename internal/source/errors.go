// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package source

import "errors"

var (
	// ErrEnvironmentNotFound indicates that no overlay document exists for
	// the requested environment identifier.
	ErrEnvironmentNotFound = errors.New("environment not found")

	// ErrInvalidEnvironmentName indicates an environment identifier that
	// could escape the values directory or collide with the base document
	// (empty, "base", or containing a path separator).
	ErrInvalidEnvironmentName = errors.New("invalid environment name")
)
