package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

// List returns videos joined with their owning channel, matching the filter.
// An empty result is an empty slice, never an error.
func (r *VideoRepo) List(ctx context.Context, f model.VideoFilter) ([]model.VideoWithChannel, error) {
	query, args := BuildVideoListQuery(f)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []model.VideoWithChannel{}
	for rows.Next() {
		v, err := scanVideoWithChannel(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// FindByID returns a single video joined with its channel. A missing row
// surfaces as pgx.ErrNoRows.
func (r *VideoRepo) FindByID(ctx context.Context, id string) (*model.VideoWithChannel, error) {
	query := `
		SELECT ` + videoJoinColumns + `
		FROM videos v
		INNER JOIN channels c ON c.id = v.channel_id
		WHERE v.id = $1`

	row := r.pool.QueryRow(ctx, query, id)

	var v model.VideoWithChannel
	err := row.Scan(
		&v.ID, &v.ChannelID, &v.Title, &v.ThumbnailURL, &v.PublishedAt,
		&v.ViewCount, &v.LikeCount, &v.CommentCount, &v.SuperChatRevenue, &v.IsLive, &v.UpdatedAt,
		&v.Channel.ID, &v.Channel.Title, &v.Channel.ThumbnailURL, &v.Channel.SubscriberCount,
		&v.Channel.VideoCount, &v.Channel.ViewCount, &v.Channel.Country, &v.Channel.Category,
		&v.Channel.IsTracked, &v.Channel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Upsert inserts the video or replaces every mutable field when the ID
// already exists. Safe to call repeatedly with the same ID.
func (r *VideoRepo) Upsert(ctx context.Context, v *model.Video) error {
	query := `
		INSERT INTO videos (id, channel_id, title, thumbnail_url, published_at,
		                    view_count, like_count, comment_count, super_chat_revenue, is_live, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		ON CONFLICT (id) DO UPDATE SET
			channel_id = EXCLUDED.channel_id,
			title = EXCLUDED.title,
			thumbnail_url = EXCLUDED.thumbnail_url,
			published_at = EXCLUDED.published_at,
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			super_chat_revenue = EXCLUDED.super_chat_revenue,
			is_live = EXCLUDED.is_live,
			updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.ChannelID, v.Title, v.ThumbnailURL, v.PublishedAt,
		v.ViewCount, v.LikeCount, v.CommentCount, v.SuperChatRevenue, v.IsLive,
	)
	return err
}

func scanVideoWithChannel(rows pgx.Rows) (model.VideoWithChannel, error) {
	var v model.VideoWithChannel
	err := rows.Scan(
		&v.ID, &v.ChannelID, &v.Title, &v.ThumbnailURL, &v.PublishedAt,
		&v.ViewCount, &v.LikeCount, &v.CommentCount, &v.SuperChatRevenue, &v.IsLive, &v.UpdatedAt,
		&v.Channel.ID, &v.Channel.Title, &v.Channel.ThumbnailURL, &v.Channel.SubscriberCount,
		&v.Channel.VideoCount, &v.Channel.ViewCount, &v.Channel.Country, &v.Channel.Category,
		&v.Channel.IsTracked, &v.Channel.UpdatedAt,
	)
	return v, err
}
