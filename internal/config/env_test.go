// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_VERSION": "1.2.3",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"VALUES_DIRECTORY":           "/etc/strata/values",
		"VALUES_DEFAULT_ENVIRONMENT": "prod",
		"VALUES_REQUIRED_PATHS":      "image.tag,database.dsn",
		"VALUES_REPLACE_ON_CONFLICT": "true",
		"VALUES_DELETE_ON_NULL":      "true",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.YAMLFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "/etc/strata/values", cfg.Values.Directory)
	assert.Equal(t, "prod", cfg.Values.DefaultEnvironment)
	assert.Equal(t, []string{"image.tag", "database.dsn"}, cfg.Values.RequiredPaths)
	assert.True(t, cfg.Values.ReplaceOnConflict)
	assert.True(t, cfg.Values.DeleteOnNull)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"VALUES_DIRECTORY": "/etc/strata/values",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "/etc/strata/values", cfg.Values.Directory)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",
		"APP_VERSION",
		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
		"VALUES_DIRECTORY",
		"VALUES_DEFAULT_ENVIRONMENT",
		"VALUES_REQUIRED_PATHS",
		"VALUES_REPLACE_ON_CONFLICT",
		"VALUES_DELETE_ON_NULL",
	}
	for _, k := range keys {
		require.NoError(t, os.Unsetenv(k))
	}
}
