// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/strata-config/strata/models"
)

// ParseSet turns a comma-separated list of "path=value" override expressions
// (the Helm --set subset: dotted paths and scalar values, no list indexing)
// into an overlay tree. Later pairs win over earlier ones.
//
// Values are typed the way YAML scalars would be: "true"/"false" become
// booleans, integer and float literals become numbers, "null" becomes an
// explicit null, everything else stays a string.
func ParseSet(expr string) (models.Tree, error) {
	overlay := models.Tree{}

	for _, pair := range strings.Split(expr, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		path, rawValue, found := strings.Cut(pair, "=")
		if !found || path == "" {
			return nil, fmt.Errorf("%w: %q, want path=value", ErrInvalidSetValue, pair)
		}

		for _, segment := range strings.Split(path, ".") {
			if segment == "" {
				return nil, fmt.Errorf("%w: empty segment in path %q", ErrInvalidSetValue, path)
			}
		}

		setPath(overlay, path, typedScalar(rawValue))
	}

	return overlay, nil
}

func typedScalar(raw string) any {
	switch raw {
	case "null", "~":
		return nil
	case "true":
		return true
	case "false":
		return false
	}

	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	return raw
}
