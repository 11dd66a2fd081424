// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package values

import (
	"strings"

	"github.com/strata-config/strata/models"
)

// Lookup walks the tree along a dotted path ("image.tag") and returns the
// value found there. The second return reports whether every segment of the
// path existed; an explicit null stored at the path counts as present.
func Lookup(tree models.Tree, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	current := tree
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		value, ok := current[segment]
		if !ok {
			return nil, false
		}

		if i == len(segments)-1 {
			return value, true
		}

		next, isMapping := asTree(value)
		if !isMapping {
			return nil, false
		}
		current = next
	}

	return nil, false
}

// setPath places value into the tree at the dotted path, creating
// intermediate mappings as needed. Existing non-mapping intermediates are
// replaced. The tree is mutated in place; callers own it exclusively.
func setPath(tree models.Tree, path string, value any) {
	segments := strings.Split(path, ".")
	current := tree
	for _, segment := range segments[:len(segments)-1] {
		next, isMapping := asTree(current[segment])
		if !isMapping {
			next = models.Tree{}
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = value
}
