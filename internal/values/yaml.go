// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package values

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/strata-config/strata/models"
)

// ParseTree decodes a YAML document into a [models.Tree].
//
// An empty document (or one containing only comments) yields an empty tree.
// A document whose top level is not a mapping fails with
// [ErrInvalidStructure].
func ParseTree(data []byte) (models.Tree, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("error decoding yaml document: %w", err)
	}

	if raw == nil {
		return models.Tree{}, nil
	}

	tree, ok := asTree(raw)
	if !ok {
		return nil, fmt.Errorf("%w: document top level is %s, want a mapping",
			ErrInvalidStructure, kindOf(raw))
	}

	return tree, nil
}

// EncodeTree renders the tree as canonical YAML: yaml.v3 emits mapping keys
// in sorted order, so equal trees always encode to identical bytes.
func EncodeTree(tree models.Tree) ([]byte, error) {
	data, err := yaml.Marshal(map[string]any(tree))
	if err != nil {
		return nil, fmt.Errorf("error encoding yaml document: %w", err)
	}

	return data, nil
}

// Fingerprint returns the hex-encoded SHA-256 of the tree's canonical YAML
// encoding. Equal trees produce equal fingerprints.
func Fingerprint(tree models.Tree) (string, error) {
	data, err := EncodeTree(tree)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:]), nil
}
