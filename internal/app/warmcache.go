package app

import (
	"context"
	"os"
	"time"

	"github.com/bobmcallan/finchat/internal/common"
	"github.com/bobmcallan/finchat/internal/interfaces"
)

// warmCache pre-fetches the overview watchlists on startup so the first
// overview request is served from cache.
func warmCache(ctx context.Context, overview interfaces.OverviewService, logger *common.Logger) {
	if os.Getenv("FINCHAT_WARM_CACHE") == "off" {
		logger.Info().Msg("Warm cache: disabled via FINCHAT_WARM_CACHE=off")
		return
	}

	start := time.Now()
	logger.Info().Msg("Warm cache: starting")

	snap := overview.Snapshot(ctx)
	if ctx.Err() != nil {
		logger.Info().Msg("Warm cache: cancelled")
		return
	}

	logger.Info().
		Int("indices", len(snap.Indices)).
		Int("currencies", len(snap.Currencies)).
		Int("commodities", len(snap.Commodities)).
		Dur("elapsed", time.Since(start)).
		Msg("Warm cache: complete")
}
