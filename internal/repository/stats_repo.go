package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

// StatsRepo serves the aggregation queries behind the ranking engine, the
// platform overview, and the daily snapshot writes.
type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// AllTimeRevenueByChannel sums super-chat revenue per channel across the
// videos table, highest first, ties broken by channel id.
func (r *StatsRepo) AllTimeRevenueByChannel(ctx context.Context, limit int) ([]model.ChannelRevenue, error) {
	query := `
		SELECT channel_id, COALESCE(SUM(super_chat_revenue), 0) AS total_revenue
		FROM videos
		GROUP BY channel_id
		ORDER BY total_revenue DESC, channel_id ASC
		LIMIT $1`

	return r.queryRevenue(ctx, query, limit)
}

// RevenueByChannelSince sums daily revenue snapshots per channel on or after
// the given date, highest first, ties broken by channel id.
func (r *StatsRepo) RevenueByChannelSince(ctx context.Context, since time.Time, limit int) ([]model.ChannelRevenue, error) {
	query := `
		SELECT channel_id, COALESCE(SUM(revenue), 0) AS total_revenue
		FROM daily_stats
		WHERE date >= $1
		GROUP BY channel_id
		ORDER BY total_revenue DESC, channel_id ASC
		LIMIT $2`

	return r.queryRevenue(ctx, query, since, limit)
}

// SubscriberSnapshotsSince returns every subscriber snapshot on or after the
// given date, ordered by channel then date so delta computation can walk
// each channel's series in one pass.
func (r *StatsRepo) SubscriberSnapshotsSince(ctx context.Context, since time.Time) ([]model.SubscriberSnapshot, error) {
	query := `
		SELECT channel_id, date, subscribers
		FROM daily_stats
		WHERE date >= $1
		ORDER BY channel_id ASC, date ASC`

	rows, err := r.pool.Query(ctx, query, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []model.SubscriberSnapshot
	for rows.Next() {
		var s model.SubscriberSnapshot
		if err := rows.Scan(&s.ChannelID, &s.Date.Time, &s.Subscribers); err != nil {
			return nil, err
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}

// InsertDailyStat appends one snapshot row. Used by the seeder, which writes
// a fresh series into an empty table.
func (r *StatsRepo) InsertDailyStat(ctx context.Context, s *model.DailyStat) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_stats (channel_id, date, subscribers, views, revenue)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ChannelID, s.Date.Time, s.Subscribers, s.Views, s.Revenue)
	return err
}

// UpsertDailyStat writes today's snapshot, replacing an existing row for the
// same channel and date. Keeps the one-row-per-channel-per-date invariant.
func (r *StatsRepo) UpsertDailyStat(ctx context.Context, s *model.DailyStat) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO daily_stats (channel_id, date, subscribers, views, revenue)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (channel_id, date) DO UPDATE SET
			subscribers = EXCLUDED.subscribers,
			views = EXCLUDED.views,
			revenue = EXCLUDED.revenue`,
		s.ChannelID, s.Date.Time, s.Subscribers, s.Views, s.Revenue)
	return err
}

// Overview returns the aggregate totals for the dashboard landing page.
func (r *StatsRepo) Overview(ctx context.Context) (*model.Overview, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM channels)                                    AS total_channels,
			(SELECT COUNT(*) FROM videos)                                      AS total_videos,
			(SELECT COALESCE(SUM(subscriber_count), 0) FROM channels)          AS total_subscribers,
			(SELECT COALESCE(SUM(view_count), 0) FROM channels)                AS total_views,
			(SELECT COALESCE(SUM(super_chat_revenue), 0) FROM videos)          AS total_revenue,
			(SELECT COUNT(*) FROM videos WHERE is_live = TRUE)                 AS live_videos`

	var o model.Overview
	err := r.pool.QueryRow(ctx, query).Scan(
		&o.TotalChannels, &o.TotalVideos, &o.TotalSubscribers,
		&o.TotalViews, &o.TotalRevenue, &o.LiveVideos,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *StatsRepo) queryRevenue(ctx context.Context, query string, args ...any) ([]model.ChannelRevenue, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var revenues []model.ChannelRevenue
	for rows.Next() {
		var cr model.ChannelRevenue
		if err := rows.Scan(&cr.ChannelID, &cr.Revenue); err != nil {
			return nil, err
		}
		revenues = append(revenues, cr)
	}
	return revenues, rows.Err()
}
