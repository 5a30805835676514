package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tubeboard/tubeboard-go/internal/model"
	"github.com/tubeboard/tubeboard-go/internal/repository"
)

// SnapshotWorker is a periodic background job that writes today's DailyStat
// row for every tracked channel from its current counters, so charts keep
// moving between seeds. It does not ingest anything external.
type SnapshotWorker struct {
	channels *repository.ChannelRepo
	stats    *repository.StatsRepo
	interval time.Duration
	stopCh   chan struct{}

	// OnWrite is an optional counter hook invoked once per row written,
	// wired to the metrics registry at startup.
	OnWrite func()
}

// NewSnapshotWorker creates a worker that ticks every interval.
func NewSnapshotWorker(channels *repository.ChannelRepo, stats *repository.StatsRepo, interval time.Duration) *SnapshotWorker {
	return &SnapshotWorker{
		channels: channels,
		stats:    stats,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the snapshot loop. It runs one tick immediately, then every
// interval until the context is cancelled or Stop is called.
func (w *SnapshotWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("snapshot-worker: starting")

	w.tick(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.tick(ctx)
		case <-ctx.Done():
			log.Info().Msg("snapshot-worker: stopping (context cancelled)")
			return
		case <-w.stopCh:
			log.Info().Msg("snapshot-worker: stopping (stop signal)")
			return
		}
	}
}

// Stop signals the worker to stop.
func (w *SnapshotWorker) Stop() {
	close(w.stopCh)
}

// tick upserts one snapshot per tracked channel for today's date. Repeated
// ticks on the same day overwrite the same row, keeping the
// one-row-per-channel-per-date invariant.
func (w *SnapshotWorker) tick(ctx context.Context) {
	start := time.Now()

	channels, err := w.channels.List(ctx, model.ChannelFilter{})
	if err != nil {
		log.Error().Err(err).Msg("snapshot-worker: list channels failed")
		return
	}

	today := time.Now().Truncate(24 * time.Hour)
	written := 0
	for i := range channels {
		ch := &channels[i]
		if !ch.IsTracked {
			continue
		}

		stat := &model.DailyStat{
			ChannelID:   ch.ID,
			Date:        model.StatDate{Time: today},
			Subscribers: ch.SubscriberCount,
			Views:       ch.ViewCount,
		}
		if err := w.stats.UpsertDailyStat(ctx, stat); err != nil {
			log.Error().Err(err).Str("channel", ch.ID).Msg("snapshot-worker: upsert failed")
			continue
		}
		written++
		if w.OnWrite != nil {
			w.OnWrite()
		}
	}

	log.Info().
		Int("channels", written).
		Dur("elapsed", time.Since(start).Round(time.Millisecond)).
		Msg("snapshot-worker: tick complete")
}
