package service

import (
	"github.com/strata-config/strata/internal/config"
	"github.com/strata-config/strata/internal/logger"
	"github.com/strata-config/strata/internal/resolve"
	"github.com/strata-config/strata/internal/source"
	"github.com/strata-config/strata/internal/values"
)

// Services aggregates every application service consumed by the transport
// layer.
type Services struct {
	ResolutionService ResolutionService
	AppInfoService    AppInfoService
}

// NewServices wires the service layer from application config: the values
// source is the directory at cfg.Values.Directory, or an upstream strata
// server when cfg.Values.UpstreamURL is set, and the resolver is configured
// with the requested merge policy and required paths.
func NewServices(cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	var src source.Source
	if cfg.Values.UpstreamURL != "" {
		src = source.NewHTTPSource(source.HTTPSourceConfig{
			BaseURL: cfg.Values.UpstreamURL,
			Timeout: cfg.Server.RequestTimeout,
		})
	} else {
		fileSrc, err := source.NewFileSource(cfg.Values.Directory)
		if err != nil {
			return nil, err
		}
		src = fileSrc
	}

	var mergeOpts []values.MergeOption
	if cfg.Values.ReplaceOnConflict {
		mergeOpts = append(mergeOpts, values.ReplaceOnConflict())
	}
	if cfg.Values.DeleteOnNull {
		mergeOpts = append(mergeOpts, values.DeleteOnNull())
	}

	resolver := resolve.NewResolver(
		resolve.WithRequired(cfg.Values.RequiredPaths...),
		resolve.WithMergeOptions(mergeOpts...),
	)

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		ResolutionService: NewResolutionService(src, resolver, cfg.Values.DefaultEnvironment, logger),
		AppInfoService:    appInfo,
	}, nil
}
