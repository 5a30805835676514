package model

import "time"

// Channel is a tracked YouTube channel with its aggregate counters.
type Channel struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ThumbnailURL    *string   `json:"thumbnailUrl,omitempty"`
	SubscriberCount int       `json:"subscriberCount"`
	VideoCount      int       `json:"videoCount"`
	ViewCount       int64     `json:"viewCount"`
	Country         *string   `json:"country,omitempty"`
	Category        *string   `json:"category,omitempty"`
	IsTracked       bool      `json:"isTracked"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ChannelSort is the closed set of sort keys accepted by channel listings.
type ChannelSort string

const (
	ChannelSortSubscribers ChannelSort = "subscribers"
	ChannelSortViews       ChannelSort = "views"

	// ChannelSortGrowth is accepted for API compatibility; no growth metric
	// is stored on the channel row, so it orders by subscriber count.
	ChannelSortGrowth ChannelSort = "growth"
)

// ChannelFilter configures a channel listing. Zero values mean "no filter";
// the whole query is built from this struct in one step.
type ChannelFilter struct {
	Category string
	Country  string
	SortBy   ChannelSort
	Limit    int
}
