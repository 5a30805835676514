package service

import (
	"context"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tubeboard/tubeboard-go/internal/model"
	"github.com/tubeboard/tubeboard-go/internal/repository"
)

// SeedDays is the number of daily snapshots generated per channel (31 rows:
// thirty days back through today).
const SeedDays = 30

// SeedService populates an empty store with a fixed starter dataset so the
// dashboard is non-empty on first run. It no-ops when any channel exists.
type SeedService struct {
	channels *repository.ChannelRepo
	videos   *repository.VideoRepo
	stats    *repository.StatsRepo
}

func NewSeedService(channels *repository.ChannelRepo, videos *repository.VideoRepo, stats *repository.StatsRepo) *SeedService {
	return &SeedService{channels: channels, videos: videos, stats: stats}
}

// Run seeds the store once. Idempotent: guarded by an existence check, and
// the channel/video writes themselves are upserts.
func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.channels.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Info().Msg("seeding database")

	seedChannels := SeedChannels()
	for i := range seedChannels {
		if err := s.channels.Upsert(ctx, &seedChannels[i]); err != nil {
			return err
		}
	}

	for _, v := range SeedVideos() {
		if err := s.videos.Upsert(ctx, &v); err != nil {
			return err
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	today := time.Now().Truncate(24 * time.Hour)
	for _, ch := range seedChannels {
		series := GenerateStatSeries(ch.ID, ch.SubscriberCount, ch.ViewCount, SeedDays, today, rng)
		for i := range series {
			if err := s.stats.InsertDailyStat(ctx, &series[i]); err != nil {
				return err
			}
		}
	}

	log.Info().
		Int("channels", len(seedChannels)).
		Int("videos", len(SeedVideos())).
		Int("stat_days", SeedDays+1).
		Msg("seeding complete")
	return nil
}

// SeedChannels returns the fixed starter channels.
func SeedChannels() []model.Channel {
	return []model.Channel{
		{ID: "UC1", Title: "PewDiePie", SubscriberCount: 111000000, ViewCount: 29000000000, Country: strPtr("US"), Category: strPtr("Gaming"), ThumbnailURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=PewDiePie"), IsTracked: true},
		{ID: "UC2", Title: "MrBeast", SubscriberCount: 200000000, ViewCount: 35000000000, Country: strPtr("US"), Category: strPtr("Entertainment"), ThumbnailURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=MrBeast"), IsTracked: true},
		{ID: "UC3", Title: "T-Series", SubscriberCount: 250000000, ViewCount: 230000000000, Country: strPtr("IN"), Category: strPtr("Music"), ThumbnailURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=TSeries"), IsTracked: true},
		{ID: "UC4", Title: "Gawr Gura Ch. hololive-EN", SubscriberCount: 4400000, ViewCount: 350000000, Country: strPtr("JP"), Category: strPtr("VTuber"), ThumbnailURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=Gura"), IsTracked: true},
		{ID: "UC5", Title: "Mori Calliope Ch. hololive-EN", SubscriberCount: 2300000, ViewCount: 200000000, Country: strPtr("JP"), Category: strPtr("VTuber"), ThumbnailURL: strPtr("https://api.dicebear.com/7.x/avataaars/svg?seed=Calli"), IsTracked: true},
	}
}

// SeedVideos returns the fixed starter videos, revenue in cents.
func SeedVideos() []model.Video {
	now := time.Now()
	return []model.Video{
		{ID: "v1", ChannelID: "UC1", Title: "Minecraft Part 1", ViewCount: 5000000, LikeCount: 200000, SuperChatRevenue: 50000, PublishedAt: &now, ThumbnailURL: strPtr("https://placehold.co/600x400?text=Minecraft")},
		{ID: "v2", ChannelID: "UC2", Title: "$1 vs $1,000,000 Hotel Room", ViewCount: 100000000, LikeCount: 4000000, SuperChatRevenue: 0, PublishedAt: &now, ThumbnailURL: strPtr("https://placehold.co/600x400?text=Hotel")},
		{ID: "v3", ChannelID: "UC4", Title: "KARAOKE STREAM!", ViewCount: 500000, LikeCount: 50000, SuperChatRevenue: 1500000, PublishedAt: &now, IsLive: true, ThumbnailURL: strPtr("https://placehold.co/600x400?text=Karaoke")},
		{ID: "v4", ChannelID: "UC5", Title: "NEW ORIGINAL SONG MV", ViewCount: 800000, LikeCount: 80000, SuperChatRevenue: 800000, PublishedAt: &now, ThumbnailURL: strPtr("https://placehold.co/600x400?text=Song")},
	}
}

// GenerateStatSeries builds days+1 daily snapshots for a channel, oldest
// first, projecting backwards from the channel's current counters with
// randomized variance. The final row lands on today with the current
// subscriber count.
func GenerateStatSeries(channelID string, baseSubs int, baseViews int64, days int, today time.Time, rng *rand.Rand) []model.DailyStat {
	series := make([]model.DailyStat, 0, days+1)
	for i := days; i >= 0; i-- {
		subChange := rng.Intn(10000) - 2000
		viewChange := int64(rng.Intn(500000))

		series = append(series, model.DailyStat{
			ChannelID:   channelID,
			Date:        model.StatDate{Time: today.AddDate(0, 0, -i)},
			Subscribers: baseSubs - subChange*i,
			Views:       baseViews - viewChange*int64(i),
			Revenue:     rng.Intn(50000),
		})
	}
	return series
}

func strPtr(s string) *string {
	return &s
}
