package model

// RankingPeriod is the closed set of leaderboard windows.
type RankingPeriod string

const (
	PeriodDaily   RankingPeriod = "daily"
	PeriodWeekly  RankingPeriod = "weekly"
	PeriodMonthly RankingPeriod = "monthly"
	PeriodAllTime RankingPeriod = "all-time"
)

// RevenueRanking is one row of the super-chat leaderboard. Ranks are dense
// and 1-based; revenue is non-increasing down the board.
type RevenueRanking struct {
	Rank    int     `json:"rank"`
	Channel Channel `json:"channel"`
	Revenue int64   `json:"revenue"`
}

// GrowthRanking is one row of the subscriber-growth leaderboard.
type GrowthRanking struct {
	Rank              int     `json:"rank"`
	Channel           Channel `json:"channel"`
	SubscribersGained int     `json:"subscribersGained"`
}

// ChannelRevenue is an aggregation row: summed revenue per channel.
type ChannelRevenue struct {
	ChannelID string
	Revenue   int64
}

// SubscriberSnapshot is one daily_stats point used for growth deltas.
type SubscriberSnapshot struct {
	ChannelID   string
	Date        StatDate
	Subscribers int
}
