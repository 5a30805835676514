package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// migrations are applied in order on every boot. Each statement is
// idempotent so restarts are safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS channels (
		id               TEXT PRIMARY KEY,
		title            TEXT NOT NULL,
		thumbnail_url    TEXT,
		subscriber_count INTEGER NOT NULL DEFAULT 0,
		video_count      INTEGER NOT NULL DEFAULT 0,
		view_count       BIGINT NOT NULL DEFAULT 0,
		country          TEXT,
		category         TEXT,
		is_tracked       BOOLEAN NOT NULL DEFAULT TRUE,
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS videos (
		id                 TEXT PRIMARY KEY,
		channel_id         TEXT NOT NULL REFERENCES channels(id),
		title              TEXT NOT NULL,
		thumbnail_url      TEXT,
		published_at       TIMESTAMPTZ,
		view_count         BIGINT NOT NULL DEFAULT 0,
		like_count         INTEGER NOT NULL DEFAULT 0,
		comment_count      INTEGER NOT NULL DEFAULT 0,
		super_chat_revenue INTEGER NOT NULL DEFAULT 0,
		is_live            BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at         TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS daily_stats (
		id          SERIAL PRIMARY KEY,
		channel_id  TEXT NOT NULL REFERENCES channels(id),
		date        DATE NOT NULL,
		subscribers INTEGER NOT NULL DEFAULT 0,
		views       BIGINT NOT NULL DEFAULT 0,
		revenue     INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_videos_channel_id ON videos(channel_id)`,

	// Backs the snapshot worker's ON CONFLICT (channel_id, date) upsert and
	// keeps stats reads one index scan.
	`CREATE UNIQUE INDEX IF NOT EXISTS uniq_daily_stats_channel_date
		ON daily_stats(channel_id, date)`,
}

// Migrate applies the schema to the connected database.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Error().Err(err).Int("migration", i).Msg("migration failed")
			return err
		}
	}
	log.Info().Int("statements", len(migrations)).Msg("migrations applied")
	return nil
}
