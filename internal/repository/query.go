package repository

import (
	"fmt"
	"strings"

	"github.com/tubeboard/tubeboard-go/internal/model"
)

const channelColumns = `id, title, thumbnail_url, subscriber_count, video_count, view_count,
       country, category, is_tracked, updated_at`

const videoJoinColumns = `v.id, v.channel_id, v.title, v.thumbnail_url, v.published_at,
       v.view_count, v.like_count, v.comment_count, v.super_chat_revenue, v.is_live, v.updated_at,
       c.id, c.title, c.thumbnail_url, c.subscriber_count, c.video_count, c.view_count,
       c.country, c.category, c.is_tracked, c.updated_at`

// BuildChannelListQuery turns a ChannelFilter into a complete SQL statement
// and its arguments in one step. Every sort carries a secondary ascending id
// order so results are deterministic.
func BuildChannelListQuery(f model.ChannelFilter) (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT ")
	sb.WriteString(channelColumns)
	sb.WriteString("\nFROM channels")

	var conds []string
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Country != "" {
		args = append(args, f.Country)
		conds = append(conds, fmt.Sprintf("country = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	switch f.SortBy {
	case model.ChannelSortViews:
		sb.WriteString("\nORDER BY view_count DESC, id ASC")
	default:
		// subscribers, growth (no stored growth metric) and unset all order
		// by subscriber count.
		sb.WriteString("\nORDER BY subscriber_count DESC, id ASC")
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(fmt.Sprintf("\nLIMIT $%d", len(args)))
	}

	return sb.String(), args
}

// BuildVideoListQuery turns a VideoFilter into a joined SQL statement and its
// arguments. The inner join enforces the referential invariant: a video whose
// channel row is missing never appears in results.
func BuildVideoListQuery(f model.VideoFilter) (string, []any) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT ")
	sb.WriteString(videoJoinColumns)
	sb.WriteString("\nFROM videos v\nINNER JOIN channels c ON c.id = v.channel_id")

	var conds []string
	if f.ChannelID != "" {
		args = append(args, f.ChannelID)
		conds = append(conds, fmt.Sprintf("v.channel_id = $%d", len(args)))
	}
	if f.IsLive != nil {
		args = append(args, *f.IsLive)
		conds = append(conds, fmt.Sprintf("v.is_live = $%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString("\nWHERE ")
		sb.WriteString(strings.Join(conds, " AND "))
	}

	switch f.SortBy {
	case model.VideoSortViews:
		sb.WriteString("\nORDER BY v.view_count DESC, v.id ASC")
	case model.VideoSortLikes:
		sb.WriteString("\nORDER BY v.like_count DESC, v.id ASC")
	case model.VideoSortRevenue:
		sb.WriteString("\nORDER BY v.super_chat_revenue DESC, v.id ASC")
	default:
		// date and unset both order by publish time, newest first.
		sb.WriteString("\nORDER BY v.published_at DESC NULLS LAST, v.id ASC")
	}

	if f.Limit > 0 {
		args = append(args, f.Limit)
		sb.WriteString(fmt.Sprintf("\nLIMIT $%d", len(args)))
	}

	return sb.String(), args
}
