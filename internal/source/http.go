// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/strata-config/strata/models"
)

// HTTPSourceConfig configures a remote values source.
type HTTPSourceConfig struct {
	// BaseURL is the root URL of the strata server (e.g. "http://localhost:8080").
	BaseURL string

	// Timeout bounds each document fetch. Defaults to 15s when unset.
	Timeout time.Duration
}

// HTTPSource fetches configuration layers from a remote strata server over
// its JSON API.
type HTTPSource struct {
	client *resty.Client
}

// NewHTTPSource constructs an [HTTPSource] for the given server.
func NewHTTPSource(cfg HTTPSourceConfig) *HTTPSource {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &HTTPSource{client: client}
}

// Environments lists the environments known to the remote server.
func (s *HTTPSource) Environments(ctx context.Context) ([]string, error) {
	var result models.EnvironmentsResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&result).
		Get("/api/environments")
	if err != nil {
		return nil, fmt.Errorf("error fetching environments: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("error fetching environments: server returned %s", resp.Status())
	}

	return result.Environments, nil
}

// Base fetches the base layer from the remote server.
func (s *HTTPSource) Base(ctx context.Context) (models.Tree, error) {
	return s.fetchValues(ctx, BaseName)
}

// Overlay fetches the overlay layer for the given environment.
func (s *HTTPSource) Overlay(ctx context.Context, environment string) (models.Tree, error) {
	if err := validateEnvironmentName(environment); err != nil {
		return nil, err
	}

	return s.fetchValues(ctx, environment)
}

func (s *HTTPSource) fetchValues(ctx context.Context, name string) (models.Tree, error) {
	var result models.ValuesResponse

	resp, err := s.client.R().
		SetContext(ctx).
		SetResult(&result).
		SetPathParam("environment", name).
		Get("/api/values/{environment}")
	if err != nil {
		return nil, fmt.Errorf("error fetching values %q: %w", name, err)
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		if result.Values == nil {
			return models.Tree{}, nil
		}
		return result.Values, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %q", ErrEnvironmentNotFound, name)
	default:
		return nil, fmt.Errorf("error fetching values %q: server returned %s", name, resp.Status())
	}
}
