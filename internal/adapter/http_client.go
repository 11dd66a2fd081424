package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/strata-config/strata/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) Environments(ctx context.Context) ([]string, error) {
	var envResp models.EnvironmentsResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&envResp).
		Get("/api/environments")
	if err != nil {
		return nil, fmt.Errorf("environments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return envResp.Environments, nil
}

func (h *httpServerAdapter) Values(ctx context.Context, environment string) (models.Tree, error) {
	var valResp models.ValuesResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("environment", environment).
		SetResult(&valResp).
		Get("/api/values/{environment}")
	if err != nil {
		return nil, fmt.Errorf("values request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return valResp.Values, nil
}

func (h *httpServerAdapter) Resolved(ctx context.Context, environment string, setExpr string) (*models.ResolvedConfig, error) {
	var resolved models.ResolvedConfig

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("environment", environment).
		SetResult(&resolved)
	if setExpr != "" {
		req.SetQueryParam("set", setExpr)
	}

	resp, err := req.Get("/api/resolved/{environment}")
	if err != nil {
		return nil, fmt.Errorf("resolved request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return &resolved, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
