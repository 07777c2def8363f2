package app

import (
	"context"
	"time"

	"github.com/bobmcallan/finchat/internal/common"
)

// purger is a cache owner that can drop its expired entries
type purger interface {
	Purge() int
}

// startCacheJanitor purges expired gateway cache entries on a fixed interval.
func startCacheJanitor(ctx context.Context, caches []purger, logger *common.Logger, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Cache janitor: stopped")
			return
		case <-ticker.C:
			purgeAll(caches, logger)
		}
	}
}

func purgeAll(caches []purger, logger *common.Logger) int {
	removed := 0
	for _, c := range caches {
		removed += c.Purge()
	}
	if removed > 0 {
		logger.Debug().Int("removed", removed).Msg("Cache janitor: purged expired entries")
	}
	return removed
}
