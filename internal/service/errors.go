// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package service

import "errors"

var (
	// ErrVersionIsNotSpecified indicates that the application was built or
	// configured without a version string.
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
