package model

import "time"

// DateOnly is the wire format for daily stat dates.
const DateOnly = "2006-01-02"

// DailyStat is a per-channel, per-date snapshot of subscriber/view/revenue
// counters. Rows are append-only and read in ascending date order for charts.
type DailyStat struct {
	ID          int       `json:"id"`
	ChannelID   string    `json:"channelId"`
	Date        StatDate  `json:"date"`
	Subscribers int       `json:"subscribers"`
	Views       int64     `json:"views"`
	Revenue     int       `json:"revenue"`
}

// StatDate marshals as YYYY-MM-DD, matching the dashboard's chart contract.
type StatDate struct {
	time.Time
}

func (d StatDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateOnly) + `"`), nil
}

func (d *StatDate) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	t, err := time.Parse(DateOnly, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Overview holds the aggregate totals shown on the dashboard landing page.
type Overview struct {
	TotalChannels    int   `json:"totalChannels"`
	TotalVideos      int   `json:"totalVideos"`
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalViews       int64 `json:"totalViews"`
	TotalRevenue     int64 `json:"totalRevenue"`
	LiveVideos       int   `json:"liveVideos"`
}
