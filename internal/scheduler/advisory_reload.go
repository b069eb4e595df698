package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/skyfold/flightdeck/internal/index"
	"github.com/skyfold/flightdeck/internal/logger"
	"github.com/skyfold/flightdeck/internal/sources/advisories"
)

// AdvisoryReloader keeps the in-memory advisory index in sync with the
// advisory file: an immediate load at start, periodic refreshes, and a
// manual trigger for operators who just edited the file.
type AdvisoryReloader struct {
	loader        *advisories.Loader
	mapper        *advisories.Mapper
	index         *index.AdvisoryIndex
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewAdvisoryReloader creates a new advisory reloader.
func NewAdvisoryReloader(
	advisoryFile string,
	idx *index.AdvisoryIndex,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *AdvisoryReloader {
	return &AdvisoryReloader{
		loader:        advisories.NewLoader(advisoryFile),
		mapper:        advisories.NewMapper(),
		index:         idx,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the advisories once and begins the periodic reload loop.
func (ar *AdvisoryReloader) Start(ctx context.Context) error {
	if err := ar.Reload(ctx); err != nil {
		return fmt.Errorf("initial advisory load failed: %w", err)
	}

	ticker := time.NewTicker(ar.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := ar.Reload(ctx); err != nil {
					ar.logger.Error("failed to reload advisories",
						logger.Error(err))
				}
			case <-ar.manualTrigger:
				ar.logger.Info("manual advisory reload triggered")
				if err := ar.Reload(ctx); err != nil {
					ar.logger.Error("failed to reload advisories",
						logger.Error(err))
				}
			case <-ar.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the reloader.
func (ar *AdvisoryReloader) Stop() {
	close(ar.stopCh)
}

// Reload reads the advisory file and replaces the index contents.
// The previous table stays in place when the file fails to load.
func (ar *AdvisoryReloader) Reload(ctx context.Context) error {
	config, err := ar.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load advisories: %w", err)
	}

	mapped := ar.mapper.MapAdvisories(config)
	ar.index.Update(mapped)

	ar.logger.Info("route advisories reloaded",
		logger.Int("count", len(mapped)))

	return nil
}
