package service

import (
	"context"
	"time"

	"github.com/strata-config/strata/internal/logger"
)

// prewarmTimeout bounds the startup cache warm-up so a slow or broken values
// directory cannot delay serving indefinitely.
const prewarmTimeout = 30 * time.Second

// PrewarmWorker resolves every known environment once so that the first
// request for each is served from the resolution cache. Failures are logged
// and skipped: an environment that cannot be resolved at startup will simply
// be resolved (and its error surfaced) on first request.
type PrewarmWorker struct {
	resolution ResolutionService
	logger     *logger.Logger
}

// NewPrewarmWorker constructs a [PrewarmWorker] over the resolution service.
func NewPrewarmWorker(resolution ResolutionService, logger *logger.Logger) *PrewarmWorker {
	return &PrewarmWorker{
		resolution: resolution,
		logger:     logger,
	}
}

// Run warms the resolution cache for every discovered environment.
func (w *PrewarmWorker) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), prewarmTimeout)
	defer cancel()

	environments, err := w.resolution.Environments(ctx)
	if err != nil {
		w.logger.Warn().Err(err).Msg("prewarm skipped: cannot list environments")
		return
	}

	for _, environment := range environments {
		if _, err := w.resolution.Resolve(ctx, environment, ""); err != nil {
			w.logger.Warn().Err(err).Str("environment", environment).Msg("prewarm failed for environment")
			continue
		}
		w.logger.Debug().Str("environment", environment).Msg("resolution cache warmed")
	}
}
