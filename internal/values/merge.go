// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package values

import (
	"fmt"

	"github.com/strata-config/strata/models"
)

type mergeOptions struct {
	replaceOnConflict bool
	deleteOnNull      bool
}

// MergeOption adjusts the merge policy of [Merge].
type MergeOption func(*mergeOptions)

// ReplaceOnConflict switches the type-conflict policy from erroring to
// overlay-wins replacement: when the base holds a mapping and the overlay a
// scalar (or vice versa), the overlay value replaces the base value wholesale
// instead of producing [ErrInvalidStructure].
func ReplaceOnConflict() MergeOption {
	return func(o *mergeOptions) { o.replaceOnConflict = true }
}

// DeleteOnNull makes an explicit null in the overlay delete the corresponding
// base key, matching the behaviour deployment operators know from Helm values
// files. Without this option a null replaces the base value like any scalar.
func DeleteOnNull() MergeOption {
	return func(o *mergeOptions) { o.deleteOnNull = true }
}

// Merge deep-merges overlay onto base and returns a new tree:
//
//   - overlay scalars and sequences replace the base value wholesale;
//   - mappings merge key-by-key, recursively; keys present only in the base
//     are preserved, keys present only in the overlay are added;
//   - a type conflict between layers (mapping on one side, scalar or sequence
//     on the other) fails with [ErrInvalidStructure] naming the document
//     path, unless [ReplaceOnConflict] is given.
//
// Merge never mutates its inputs and the result shares no mutable state with
// either of them. Merging an empty overlay yields a copy equal to base.
func Merge(base, overlay models.Tree, opts ...MergeOption) (models.Tree, error) {
	var o mergeOptions
	for _, opt := range opts {
		opt(&o)
	}

	return mergeTrees("", base, overlay, o)
}

func mergeTrees(path string, base, overlay models.Tree, o mergeOptions) (models.Tree, error) {
	result := base.DeepCopy()
	if result == nil {
		result = models.Tree{}
	}

	for key, overlayValue := range overlay {
		keyPath := joinPath(path, key)

		if overlayValue == nil && o.deleteOnNull {
			delete(result, key)
			continue
		}

		baseValue, exists := result[key]
		if !exists {
			result[key] = copyValue(overlayValue)
			continue
		}

		baseTree, baseIsMapping := asTree(baseValue)
		overlayTree, overlayIsMapping := asTree(overlayValue)

		switch {
		case baseIsMapping && overlayIsMapping:
			merged, err := mergeTrees(keyPath, baseTree, overlayTree, o)
			if err != nil {
				return nil, err
			}
			result[key] = merged

		case baseIsMapping != overlayIsMapping && baseValue != nil && overlayValue != nil:
			if !o.replaceOnConflict {
				return nil, fmt.Errorf("%w: key %q is %s in base but %s in overlay",
					ErrInvalidStructure, keyPath, kindOf(baseValue), kindOf(overlayValue))
			}
			result[key] = copyValue(overlayValue)

		default:
			result[key] = copyValue(overlayValue)
		}
	}

	return result, nil
}

// asTree reports whether value is a mapping and returns it as [models.Tree].
// YAML decoding produces map[string]any; trees already normalized by prior
// merges appear as models.Tree.
func asTree(value any) (models.Tree, bool) {
	switch v := value.(type) {
	case models.Tree:
		return v, true
	case map[string]any:
		return models.Tree(v), true
	default:
		return nil, false
	}
}

func copyValue(value any) any {
	if tree, ok := asTree(value); ok {
		return tree.DeepCopy()
	}
	if seq, ok := value.([]any); ok {
		out := make([]any, len(seq))
		for i, item := range seq {
			out[i] = copyValue(item)
		}
		return out
	}
	return value
}

func kindOf(value any) string {
	switch value.(type) {
	case models.Tree, map[string]any:
		return "a mapping"
	case []any:
		return "a sequence"
	default:
		return "a scalar"
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
