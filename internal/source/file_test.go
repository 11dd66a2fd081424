// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeValuesDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

// ── NewFileSource ─────────────────────────────────────────────────────────────

// TestNewFileSource_MissingDirectory verifies that a nonexistent values
// directory is rejected at construction.
func TestNewFileSource_MissingDirectory(t *testing.T) {
	src, err := NewFileSource(filepath.Join(t.TempDir(), "nope"))
	assert.Nil(t, src)
	require.Error(t, err)
}

// TestNewFileSource_NotADirectory verifies that a plain file is rejected.
func TestNewFileSource_NotADirectory(t *testing.T) {
	dir := writeValuesDir(t, map[string]string{"values.yaml": "a: 1\n"})

	src, err := NewFileSource(filepath.Join(dir, "values.yaml"))
	assert.Nil(t, src)
	require.Error(t, err)
}

// ── Environments ──────────────────────────────────────────────────────────────

// TestFileSource_Environments verifies overlay discovery and sorting.
func TestFileSource_Environments(t *testing.T) {
	dir := writeValuesDir(t, map[string]string{
		"values.yaml":         "a: 1\n",
		"values-prod.yaml":    "a: 2\n",
		"values-dev.yaml":     "a: 3\n",
		"values-staging.yaml": "a: 4\n",
		"README.md":           "not a values file\n",
		"values-.yaml":        "ignored: true\n",
	})
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	environments, err := src.Environments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dev", "prod", "staging"}, environments)
}

// TestFileSource_Environments_EmptyDirectory verifies that a directory with
// no overlays yields an empty list.
func TestFileSource_Environments_EmptyDirectory(t *testing.T) {
	src, err := NewFileSource(t.TempDir())
	require.NoError(t, err)

	environments, err := src.Environments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, environments)
}

// ── Base / Overlay ────────────────────────────────────────────────────────────

// TestFileSource_Base verifies loading of the base document.
func TestFileSource_Base(t *testing.T) {
	dir := writeValuesDir(t, map[string]string{
		"values.yaml": "replicas: 3\nimage:\n  tag: latest\n",
	})
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	base, err := src.Base(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, base["replicas"])
}

// TestFileSource_Base_Missing verifies that an absent values.yaml yields an
// empty tree so overlay-only directories still resolve.
func TestFileSource_Base_Missing(t *testing.T) {
	src, err := NewFileSource(t.TempDir())
	require.NoError(t, err)

	base, err := src.Base(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Tree{}, base)
}

// TestFileSource_Overlay verifies loading of an environment overlay.
func TestFileSource_Overlay(t *testing.T) {
	dir := writeValuesDir(t, map[string]string{
		"values-prod.yaml": "replicas: 5\n",
	})
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	overlay, err := src.Overlay(context.Background(), "prod")
	require.NoError(t, err)
	assert.Equal(t, 5, overlay["replicas"])
}

// TestFileSource_Overlay_Unknown verifies ErrEnvironmentNotFound for a
// missing overlay file.
func TestFileSource_Overlay_Unknown(t *testing.T) {
	src, err := NewFileSource(t.TempDir())
	require.NoError(t, err)

	overlay, err := src.Overlay(context.Background(), "prod")
	assert.Nil(t, overlay)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvironmentNotFound)
}

// TestFileSource_Overlay_InvalidNames verifies rejection of identifiers that
// could escape the values directory or shadow the base document.
func TestFileSource_Overlay_InvalidNames(t *testing.T) {
	src, err := NewFileSource(t.TempDir())
	require.NoError(t, err)

	for _, environment := range []string{"", "base", "../etc", `a\b`, "a/b"} {
		_, err := src.Overlay(context.Background(), environment)
		require.Error(t, err, environment)
		assert.ErrorIs(t, err, ErrInvalidEnvironmentName, environment)
	}
}

// TestFileSource_Overlay_MalformedYAML verifies that parse errors surface
// with the file name.
func TestFileSource_Overlay_MalformedYAML(t *testing.T) {
	dir := writeValuesDir(t, map[string]string{
		"values-dev.yaml": "a: [unclosed\n",
	})
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	_, err = src.Overlay(context.Background(), "dev")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "values-dev.yaml")
}

// TestFileSource_Overlay_TopLevelScalar verifies that structurally invalid
// overlays are rejected with the values package sentinel.
func TestFileSource_Overlay_TopLevelScalar(t *testing.T) {
	dir := writeValuesDir(t, map[string]string{
		"values-dev.yaml": "just a string\n",
	})
	src, err := NewFileSource(dir)
	require.NoError(t, err)

	_, err = src.Overlay(context.Background(), "dev")
	require.Error(t, err)
	assert.ErrorIs(t, err, values.ErrInvalidStructure)
}
