// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package source

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strata-config/strata/models"
)

// newTestServer spins up a stub strata API serving the given documents.
func newTestServer(t *testing.T, docs map[string]models.Tree) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/environments", func(w http.ResponseWriter, r *http.Request) {
		environments := make([]string, 0, len(docs))
		for name := range docs {
			if name != BaseName {
				environments = append(environments, name)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.EnvironmentsResponse{Environments: environments})
	})
	mux.HandleFunc("GET /api/values/{environment}", func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("environment")
		tree, ok := docs[name]
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(models.ErrorResponse{Error: "environment not found"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.ValuesResponse{Environment: name, Values: tree})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

// TestHTTPSource_Environments verifies fetching the environment list.
func TestHTTPSource_Environments(t *testing.T) {
	server := newTestServer(t, map[string]models.Tree{
		BaseName: {"a": 1},
		"dev":    {},
	})
	src := NewHTTPSource(HTTPSourceConfig{BaseURL: server.URL})

	environments, err := src.Environments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"dev"}, environments)
}

// TestHTTPSource_Base verifies fetching the base layer.
func TestHTTPSource_Base(t *testing.T) {
	server := newTestServer(t, map[string]models.Tree{
		BaseName: {"replicas": 3, "image": models.Tree{"tag": "latest"}},
	})
	src := NewHTTPSource(HTTPSourceConfig{BaseURL: server.URL})

	base, err := src.Base(context.Background())
	require.NoError(t, err)

	// JSON transport turns numbers into float64
	assert.Equal(t, float64(3), base["replicas"])
}

// TestHTTPSource_Overlay_NotFound verifies the 404 → ErrEnvironmentNotFound
// mapping.
func TestHTTPSource_Overlay_NotFound(t *testing.T) {
	server := newTestServer(t, map[string]models.Tree{})
	src := NewHTTPSource(HTTPSourceConfig{BaseURL: server.URL})

	overlay, err := src.Overlay(context.Background(), "prod")
	assert.Nil(t, overlay)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvironmentNotFound)
}

// TestHTTPSource_Overlay_InvalidName verifies that invalid identifiers are
// rejected before any network call.
func TestHTTPSource_Overlay_InvalidName(t *testing.T) {
	src := NewHTTPSource(HTTPSourceConfig{BaseURL: "http://127.0.0.1:1"})

	_, err := src.Overlay(context.Background(), "base")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidEnvironmentName)
}

// TestHTTPSource_ServerError verifies that a 5xx response surfaces as an
// error with the status text.
func TestHTTPSource_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	src := NewHTTPSource(HTTPSourceConfig{BaseURL: server.URL, Timeout: 2 * time.Second})

	_, err := src.Base(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

// TestHTTPSource_ContextCancelled verifies that a cancelled context aborts
// the request.
func TestHTTPSource_ContextCancelled(t *testing.T) {
	server := newTestServer(t, map[string]models.Tree{BaseName: {}})
	src := NewHTTPSource(HTTPSourceConfig{BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Base(ctx)
	require.Error(t, err)
}
