package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

type ChannelRepo struct {
	pool *pgxpool.Pool
}

func NewChannelRepo(pool *pgxpool.Pool) *ChannelRepo {
	return &ChannelRepo{pool: pool}
}

// List returns channels matching the filter. An empty result is an empty
// slice, never an error.
func (r *ChannelRepo) List(ctx context.Context, f model.ChannelFilter) ([]model.Channel, error) {
	query, args := BuildChannelListQuery(f)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	channels := []model.Channel{}
	for rows.Next() {
		ch, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, rows.Err()
}

// FindByID returns a single channel by its ID. A missing row surfaces as
// pgx.ErrNoRows, the query layer's not-found signal.
func (r *ChannelRepo) FindByID(ctx context.Context, id string) (*model.Channel, error) {
	query := `
		SELECT ` + channelColumns + `
		FROM channels
		WHERE id = $1`

	var ch model.Channel
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&ch.ID, &ch.Title, &ch.ThumbnailURL, &ch.SubscriberCount, &ch.VideoCount,
		&ch.ViewCount, &ch.Country, &ch.Category, &ch.IsTracked, &ch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Upsert inserts the channel or, when the ID already exists, replaces every
// mutable field. Safe to call repeatedly with the same ID.
func (r *ChannelRepo) Upsert(ctx context.Context, ch *model.Channel) error {
	query := `
		INSERT INTO channels (id, title, thumbnail_url, subscriber_count, video_count,
		                      view_count, country, category, is_tracked, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			thumbnail_url = EXCLUDED.thumbnail_url,
			subscriber_count = EXCLUDED.subscriber_count,
			video_count = EXCLUDED.video_count,
			view_count = EXCLUDED.view_count,
			country = EXCLUDED.country,
			category = EXCLUDED.category,
			is_tracked = EXCLUDED.is_tracked,
			updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query,
		ch.ID, ch.Title, ch.ThumbnailURL, ch.SubscriberCount, ch.VideoCount,
		ch.ViewCount, ch.Country, ch.Category, ch.IsTracked,
	)
	return err
}

// DailyStats returns every snapshot for a channel in ascending date order.
// Charts depend on this ordering.
func (r *ChannelRepo) DailyStats(ctx context.Context, channelID string) ([]model.DailyStat, error) {
	query := `
		SELECT id, channel_id, date, subscribers, views, revenue
		FROM daily_stats
		WHERE channel_id = $1
		ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, channelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := []model.DailyStat{}
	for rows.Next() {
		var s model.DailyStat
		if err := rows.Scan(&s.ID, &s.ChannelID, &s.Date.Time, &s.Subscribers, &s.Views, &s.Revenue); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

// Count returns the number of channel rows. The seeder uses it as its
// already-populated guard.
func (r *ChannelRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM channels`).Scan(&n)
	return n, err
}

func scanChannel(rows pgx.Rows) (model.Channel, error) {
	var ch model.Channel
	err := rows.Scan(
		&ch.ID, &ch.Title, &ch.ThumbnailURL, &ch.SubscriberCount, &ch.VideoCount,
		&ch.ViewCount, &ch.Country, &ch.Category, &ch.IsTracked, &ch.UpdatedAt,
	)
	return ch, err
}
