// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Strata Authors

package resolve

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/strata-config/strata/internal/values"
	"github.com/strata-config/strata/models"
)

// Keys with special meaning during resolution, matching the layout Helm
// operators use in values files.
const (
	// GlobalKey is the top-level shared section injected into every service
	// subtree.
	GlobalKey = "global"

	// ServicesKey is the top-level mapping of per-service configuration
	// blocks that receive the shared section.
	ServicesKey = "services"
)

// Resolver merges configuration layers for a target environment.
// The zero value resolves with no defaults and no required paths; options
// are supplied at construction and never change afterwards.
type Resolver struct {
	defaults  models.Tree
	required  []string
	mergeOpts []values.MergeOption
}

// Option configures a [Resolver].
type Option func(*Resolver)

// WithDefaults supplies the documented fallback values. They form the lowest
// precedence layer: any value present in the base or an overlay wins.
func WithDefaults(defaults models.Tree) Option {
	return func(r *Resolver) { r.defaults = defaults.DeepCopy() }
}

// WithRequired declares dotted paths that must hold a value in at least one
// layer (defaults included). Resolution fails with [ErrMissingRequiredValue]
// when any of them is absent from the merged tree.
func WithRequired(paths ...string) Option {
	return func(r *Resolver) { r.required = append(r.required, paths...) }
}

// WithMergeOptions forwards merge policy switches (such as
// [values.ReplaceOnConflict]) to every layer merge the resolver performs.
func WithMergeOptions(opts ...values.MergeOption) Option {
	return func(r *Resolver) { r.mergeOpts = append(r.mergeOpts, opts...) }
}

// NewResolver constructs a [Resolver] with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve produces the final configuration for environment: defaults, then
// base, then each overlay in order are squashed into one tree, the shared
// global section is injected into every service subtree, and required paths
// are checked. The returned config owns its tree exclusively.
//
// Equal inputs always produce equal trees and fingerprints; only ResolvedAt
// differs between calls.
func (r *Resolver) Resolve(ctx context.Context, base models.Tree, overlays []models.Tree, environment string) (*models.ResolvedConfig, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged, err := values.Merge(r.defaults, base, r.mergeOpts...)
	if err != nil {
		return nil, fmt.Errorf("error merging base onto defaults: %w", err)
	}

	for i, overlay := range overlays {
		merged, err = values.Merge(merged, overlay, r.mergeOpts...)
		if err != nil {
			return nil, fmt.Errorf("error merging overlay %d for environment %q: %w", i, environment, err)
		}
	}

	merged, err = r.injectGlobals(merged)
	if err != nil {
		return nil, err
	}

	if err := r.checkRequired(merged, environment); err != nil {
		return nil, err
	}

	fingerprint, err := values.Fingerprint(merged)
	if err != nil {
		return nil, fmt.Errorf("error fingerprinting resolved tree: %w", err)
	}

	return &models.ResolvedConfig{
		Environment: environment,
		Values:      merged,
		Fingerprint: fingerprint,
		ResolvedAt:  time.Now().UTC(),
	}, nil
}

// injectGlobals copies the top-level global section into each entry of the
// services mapping under that service's own "global" key. Keys the service
// already defines locally win over the shared ones. Shared values are passed
// down explicitly this way so no resolver state outlives the call.
func (r *Resolver) injectGlobals(tree models.Tree) (models.Tree, error) {
	globalValue, hasGlobal := tree[GlobalKey]
	servicesValue, hasServices := tree[ServicesKey]
	if !hasGlobal || !hasServices {
		return tree, nil
	}

	global, ok := asTree(globalValue)
	if !ok {
		return nil, fmt.Errorf("%w: top-level %q must be a mapping", values.ErrInvalidStructure, GlobalKey)
	}
	services, ok := asTree(servicesValue)
	if !ok {
		return nil, fmt.Errorf("%w: top-level %q must be a mapping", values.ErrInvalidStructure, ServicesKey)
	}

	injected := services.DeepCopy()
	for name, serviceValue := range injected {
		service, ok := asTree(serviceValue)
		if !ok {
			continue
		}

		local, _ := asTree(service[GlobalKey])
		combined, err := values.Merge(global, local, r.mergeOpts...)
		if err != nil {
			return nil, fmt.Errorf("error merging global section into service %q: %w", name, err)
		}

		service = service.DeepCopy()
		service[GlobalKey] = combined
		injected[name] = service
	}

	result := tree.DeepCopy()
	result[ServicesKey] = injected

	return result, nil
}

func (r *Resolver) checkRequired(tree models.Tree, environment string) error {
	missing := make([]string, 0)
	for _, path := range r.required {
		if _, ok := values.Lookup(tree, path); !ok {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: environment %q is missing %v", ErrMissingRequiredValue, environment, missing)
	}

	return nil
}

func asTree(value any) (models.Tree, bool) {
	switch v := value.(type) {
	case models.Tree:
		return v, true
	case map[string]any:
		return models.Tree(v), true
	default:
		return nil, false
	}
}
