package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempYAMLConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result with earlier configs winning.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9999"}},
		&StructuredConfig{Server: Server{HTTPAddress: "ignored:1", RequestTimeout: time.Minute}},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "localhost:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
}

// TestBuild_DefaultsFillGaps verifies that the built-in defaults apply only
// where every other source is silent.
func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Values: Values{Directory: "/etc/strata/values"}})
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/etc/strata/values", cfg.Values.Directory)
	assert.Equal(t, "dev", cfg.Values.DefaultEnvironment)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

// TestBuild_ValidationFailure verifies that an invalid merged config is
// rejected.
func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Server: Server{HTTPAddress: "localhost:8080", RequestTimeout: time.Second},
		Values: Values{DefaultEnvironment: "dev"}, // Directory left empty
	})

	_, err := b.build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidValuesConfigs)
}

// ── withYAML ──────────────────────────────────────────────────────────────────

// TestWithYAML_MergedBelowEarlierSources verifies that the YAML file layer
// fills gaps without overriding env/flag values.
func TestWithYAML_MergedBelowEarlierSources(t *testing.T) {
	path := writeTempYAMLConfig(t, `
server:
  http_address: "filehost:7070"
  request_timeout: 45s
values:
  directory: /from/file
  default_environment: staging
`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Values:       Values{Directory: "/from/env"},
		YAMLFilePath: path,
	})
	b.withYAML()

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "/from/env", cfg.Values.Directory)
	assert.Equal(t, "staging", cfg.Values.DefaultEnvironment)
	assert.Equal(t, "filehost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
}

// TestWithYAML_NoPathIsNoOp verifies that no YAML layer is added when no
// earlier source names a file.
func TestWithYAML_NoPathIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withYAML()

	assert.Len(t, b.configs, 1)
}

// TestWithYAML_MissingFile verifies that a dangling config path surfaces as
// a build error.
func TestWithYAML_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{YAMLFilePath: "/does/not/exist.yaml"})
	b.withYAML()

	_, err := b.build()
	require.Error(t, err)
}
