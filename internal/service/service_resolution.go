// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/strata-config/strata/internal/logger"
	"github.com/strata-config/strata/internal/resolve"
	"github.com/strata-config/strata/internal/source"
	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

type resolutionService struct {
	source   source.Source
	resolver *resolve.Resolver

	// defaultEnvironment is resolved when a caller names no environment.
	defaultEnvironment string

	// cache memoizes resolutions per environment. Resolution itself stays a
	// pure function; the cache entry records the input fingerprints it was
	// computed from and is discarded as soon as the source documents change.
	mu    sync.RWMutex
	cache map[string]cachedResolution

	logger *logger.Logger
}

type cachedResolution struct {
	inputKey string
	resolved *models.ResolvedConfig
}

// NewResolutionService constructs the [ResolutionService] backed by the
// given values source and resolver. defaultEnvironment is substituted when
// Resolve is called with an empty environment; pass "" to disable the
// fallback.
func NewResolutionService(src source.Source, resolver *resolve.Resolver, defaultEnvironment string, logger *logger.Logger) ResolutionService {
	return &resolutionService{
		source:             src,
		resolver:           resolver,
		defaultEnvironment: defaultEnvironment,
		cache:              make(map[string]cachedResolution),
		logger:             logger,
	}
}

func (s *resolutionService) Environments(ctx context.Context) ([]string, error) {
	return s.source.Environments(ctx)
}

func (s *resolutionService) Values(ctx context.Context, environment string) (models.Tree, error) {
	if environment == source.BaseName {
		return s.source.Base(ctx)
	}

	return s.source.Overlay(ctx, environment)
}

func (s *resolutionService) Resolve(ctx context.Context, environment string, setExpr string) (*models.ResolvedConfig, error) {
	if environment == "" {
		environment = s.defaultEnvironment
	}

	base, err := s.source.Base(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading base layer: %w", err)
	}

	overlay, err := s.source.Overlay(ctx, environment)
	if err != nil {
		return nil, fmt.Errorf("error loading overlay for %q: %w", environment, err)
	}

	overlays := []models.Tree{overlay}
	if setExpr != "" {
		setOverlay, err := values.ParseSet(setExpr)
		if err != nil {
			return nil, err
		}
		overlays = append(overlays, setOverlay)
	}

	inputKey, err := resolutionInputKey(base, overlays)
	if err != nil {
		return nil, err
	}

	cacheKey := environment + "|" + setExpr
	if resolved, ok := s.cachedFor(cacheKey, inputKey); ok {
		s.logger.Debug().Str("environment", environment).Msg("resolution served from cache")
		return resolved, nil
	}

	resolved, err := s.resolver.Resolve(ctx, base, overlays, environment)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache[cacheKey] = cachedResolution{inputKey: inputKey, resolved: resolved}
	s.mu.Unlock()

	s.logger.Debug().
		Str("environment", environment).
		Str("fingerprint", resolved.Fingerprint).
		Msg("configuration resolved")

	return copyResolved(resolved), nil
}

func (s *resolutionService) cachedFor(cacheKey, inputKey string) (*models.ResolvedConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.cache[cacheKey]
	if !ok || entry.inputKey != inputKey {
		return nil, false
	}

	return copyResolved(entry.resolved), true
}

// resolutionInputKey identifies the exact source documents a resolution was
// computed from, so stale cache entries are detected when files change.
func resolutionInputKey(base models.Tree, overlays []models.Tree) (string, error) {
	key, err := values.Fingerprint(base)
	if err != nil {
		return "", fmt.Errorf("error fingerprinting base layer: %w", err)
	}

	for _, overlay := range overlays {
		fp, err := values.Fingerprint(overlay)
		if err != nil {
			return "", fmt.Errorf("error fingerprinting overlay: %w", err)
		}
		key += "|" + fp
	}

	return key, nil
}

func copyResolved(resolved *models.ResolvedConfig) *models.ResolvedConfig {
	out := *resolved
	out.Values = resolved.Values.DeepCopy()

	return &out
}
