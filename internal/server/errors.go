// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package server

import "errors"

// errNoServersAreCreated is returned when the configuration does not
// define a listen address for any server.
var errNoServersAreCreated = errors.New("no servers configured")
