package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/strata-config/strata/internal/source"
	"github.com/strata-config/strata/models"
)

// ─────────────────────────────────────────────
// getEnvironments
// ─────────────────────────────────────────────

// TestGetEnvironments_ReturnsSortedList verifies that the handler returns the
// environment identifiers reported by the service as a JSON array.
func TestGetEnvironments_ReturnsSortedList(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().
		Environments(gomock.Any()).
		Return([]string{"dev", "prod", "staging"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/environments", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.EnvironmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"dev", "prod", "staging"}, got.Environments)
}

// TestGetEnvironments_EmptyDirectory verifies that a source with no overlays
// still answers 200 with an empty list rather than an error.
func TestGetEnvironments_EmptyDirectory(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().Environments(gomock.Any()).Return([]string{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/environments", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.EnvironmentsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Empty(t, got.Environments)
}

// TestGetEnvironments_SourceFailure verifies that an unexpected service error
// maps to 500 and an ErrorResponse body.
func TestGetEnvironments_SourceFailure(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().
		Environments(gomock.Any()).
		Return(nil, fmt.Errorf("read values dir: permission denied"))

	req := httptest.NewRequest(http.MethodGet, "/api/environments", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Error, "permission denied")
}

// ─────────────────────────────────────────────
// getValues
// ─────────────────────────────────────────────

// TestGetValues_ReturnsRawLayer verifies that a single unmerged layer is
// returned verbatim for the requested environment.
func TestGetValues_ReturnsRawLayer(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().
		Values(gomock.Any(), "dev").
		Return(models.Tree{"replicas": 2, "image": map[string]any{"tag": "dev"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/values/dev", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ValuesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "dev", got.Environment)
	assert.Equal(t, float64(2), got.Values["replicas"])
}

// TestGetValues_BaseLayer verifies that the reserved "base" identifier selects
// the base document.
func TestGetValues_BaseLayer(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().
		Values(gomock.Any(), "base").
		Return(models.Tree{"replicas": 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/values/base", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ValuesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "base", got.Environment)
}

// TestGetValues_UnknownEnvironment verifies that a missing overlay maps to 404.
func TestGetValues_UnknownEnvironment(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().
		Values(gomock.Any(), "nope").
		Return(nil, fmt.Errorf("environment %q: %w", "nope", source.ErrEnvironmentNotFound))

	req := httptest.NewRequest(http.MethodGet, "/api/values/nope", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestGetValues_InvalidEnvironmentName verifies that a rejected identifier
// maps to 400.
func TestGetValues_InvalidEnvironmentName(t *testing.T) {
	h, resolution, _ := newTestHandler(t)
	resolution.EXPECT().
		Values(gomock.Any(), "..").
		Return(nil, source.ErrInvalidEnvironmentName)

	req := httptest.NewRequest(http.MethodGet, "/api/values/..", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
