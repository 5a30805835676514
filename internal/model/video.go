package model

import "time"

// Video is a single published item belonging to a channel, carrying its own
// engagement and super-chat revenue counters (smallest currency unit).
type Video struct {
	ID               string     `json:"id"`
	ChannelID        string     `json:"channelId"`
	Title            string     `json:"title"`
	ThumbnailURL     *string    `json:"thumbnailUrl,omitempty"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
	ViewCount        int64      `json:"viewCount"`
	LikeCount        int        `json:"likeCount"`
	CommentCount     int        `json:"commentCount"`
	SuperChatRevenue int        `json:"superChatRevenue"`
	IsLive           bool       `json:"isLive"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// VideoWithChannel is the composite row returned by joined video reads. The
// shape is fixed at the query boundary; a video whose channel is missing
// never appears because the join is inner.
type VideoWithChannel struct {
	Video
	Channel Channel `json:"channel"`
}

// VideoSort is the closed set of sort keys accepted by video listings.
type VideoSort string

const (
	VideoSortViews   VideoSort = "views"
	VideoSortLikes   VideoSort = "likes"
	VideoSortRevenue VideoSort = "revenue"
	VideoSortDate    VideoSort = "date"
)

// VideoFilter configures a video listing. IsLive is a tri-state: nil means
// no live filter.
type VideoFilter struct {
	ChannelID string
	IsLive    *bool
	SortBy    VideoSort
	Limit     int
}
