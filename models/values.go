// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package models

import "time"

// Tree is one configuration layer: a mapping from string keys to scalars,
// nested mappings, or sequences. Base documents, environment overlays, and
// resolved outputs all share this shape.
//
// A Tree is produced by decoding a YAML document and is treated as a plain
// value: functions operating on trees must not mutate their inputs.
type Tree map[string]any

// DeepCopy returns a copy of the tree that shares no mutable state with the
// receiver. Nested mappings and sequences are copied recursively; scalars are
// copied by value.
func (t Tree) DeepCopy() Tree {
	if t == nil {
		return nil
	}

	out := make(Tree, len(t))
	for key, value := range t {
		out[key] = deepCopyValue(value)
	}

	return out
}

// IsEmpty reports whether the tree carries no keys at all.
// A nil tree is empty.
func (t Tree) IsEmpty() bool {
	return len(t) == 0
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case Tree:
		return v.DeepCopy()
	case map[string]any:
		return Tree(v).DeepCopy()
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}

// ResolvedConfig is the final merged configuration for one environment.
// It is immutable once produced: the resolver hands out deep copies, and the
// fingerprint identifies the exact (base, overlays, environment) inputs that
// produced it.
type ResolvedConfig struct {
	// Environment is the identifier of the overlay set that was applied
	// (e.g. "dev", "prod").
	Environment string `json:"environment" yaml:"environment"`

	// Values is the resolved configuration tree consumed by the deployment
	// tooling.
	Values Tree `json:"values" yaml:"values"`

	// Fingerprint is the hex-encoded SHA-256 of the canonical encoding of
	// Values. Equal inputs always yield equal fingerprints.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint"`

	// ResolvedAt is the wall-clock time the resolution was performed.
	// It is informational and not part of the fingerprint.
	ResolvedAt time.Time `json:"resolved_at" yaml:"resolved_at"`
}

// Values returns a deep copy of the resolved tree, preserving the
// immutability of the stored configuration.
func (rc *ResolvedConfig) ValuesCopy() Tree {
	return rc.Values.DeepCopy()
}
