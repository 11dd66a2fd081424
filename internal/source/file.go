// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

const (
	baseFileName  = "values.yaml"
	overlayPrefix = "values-"
	overlaySuffix = ".yaml"
)

// BaseName is the reserved identifier under which the base layer is exposed
// over the HTTP API.
const BaseName = "base"

// FileSource reads configuration layers from a values directory laid out the
// way Helm charts keep theirs: values.yaml holds the base document and each
// values-<environment>.yaml holds one overlay.
type FileSource struct {
	dir string
}

// NewFileSource constructs a [FileSource] for the given values directory.
// The directory must exist; its contents are re-read on every call so edits
// are picked up without restarts.
func NewFileSource(dir string) (*FileSource, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error opening values directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("values path %q is not a directory", dir)
	}

	return &FileSource{dir: dir}, nil
}

// Environments lists the environments that have an overlay file in the
// values directory, sorted alphabetically.
func (s *FileSource) Environments(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error listing values directory: %w", err)
	}

	environments := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, overlayPrefix) || !strings.HasSuffix(name, overlaySuffix) {
			continue
		}

		environment := strings.TrimSuffix(strings.TrimPrefix(name, overlayPrefix), overlaySuffix)
		if environment != "" {
			environments = append(environments, environment)
		}
	}

	sort.Strings(environments)

	return environments, nil
}

// Base loads values.yaml. A missing base file yields an empty tree so a
// directory holding only overlays still resolves.
func (s *FileSource) Base(ctx context.Context) (models.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.dir, baseFileName))
	if os.IsNotExist(err) {
		return models.Tree{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading base document: %w", err)
	}

	tree, err := values.ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", baseFileName, err)
	}

	return tree, nil
}

// Overlay loads values-<environment>.yaml for the given environment.
func (s *FileSource) Overlay(ctx context.Context, environment string) (models.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateEnvironmentName(environment); err != nil {
		return nil, err
	}

	fileName := overlayPrefix + environment + overlaySuffix
	data, err := os.ReadFile(filepath.Join(s.dir, fileName))
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %q", ErrEnvironmentNotFound, environment)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading overlay document: %w", err)
	}

	tree, err := values.ParseTree(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", fileName, err)
	}

	return tree, nil
}

func validateEnvironmentName(environment string) error {
	if environment == "" || environment == BaseName {
		return fmt.Errorf("%w: %q", ErrInvalidEnvironmentName, environment)
	}
	if strings.ContainsAny(environment, `/\`) || strings.Contains(environment, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidEnvironmentName, environment)
	}

	return nil
}
