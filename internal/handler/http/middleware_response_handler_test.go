// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResponseWriter_RecordsStatus verifies that WriteHeader captures the
// status code and forwards it once.
func TestResponseWriter_RecordsStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)

	require.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

// TestResponseWriter_IgnoresSecondWriteHeader verifies that only the first
// WriteHeader call takes effect.
func TestResponseWriter_IgnoresSecondWriteHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNotFound)
	w.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotFound, w.status)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestResponseWriter_ImplicitStatusOnWrite verifies that Write without a
// prior WriteHeader records 200.
func TestResponseWriter_ImplicitStatusOnWrite(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("body"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
}

// TestResponseWriter_AccumulatesSize verifies that size sums every Write.
func TestResponseWriter_AccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("hello "))
	w.Write([]byte("world"))

	assert.Equal(t, len("hello world"), w.size)
	assert.Equal(t, "hello world", rec.Body.String())
}
