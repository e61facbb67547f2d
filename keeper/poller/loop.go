package poller

import (
	"context"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/pkg/logger"
)

// Loop refreshes p every cfg.Interval until stop is closed. The first refresh runs after
// cfg.InitialWait. A failed refresh is logged and retried on the next tick.
func Loop[T any](stop <-chan struct{}, p domain.Poller[T], cfg config.PollConfig) {
	ctx := context.Background()
	log := logger.Logger(ctx).With().Str("poller", string(p.Kind())).Logger()
	interval := cfg.Interval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	log.Info().Msgf("poller starting, initial wait %s, interval %s", cfg.InitialWait, interval)

	if cfg.InitialWait > 0 {
		select {
		case <-time.After(cfg.InitialWait):
		case <-stop:
			return
		}
	}
	if _, err := p.Refresh(ctx); err != nil {
		log.Warn().Err(err).Msg("initial refresh failed")
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if _, err := p.Refresh(ctx); err != nil {
				log.Warn().Err(err).Msg("periodic refresh failed")
			}
		case <-stop:
			log.Info().Msg("poller stopped")
			return
		}
	}
}
