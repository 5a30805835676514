package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	"github.com/tubeboard/tubeboard-go/internal/model"
	"github.com/tubeboard/tubeboard-go/internal/repository"
)

// DefaultRankingLimit caps leaderboards when no limit is requested.
const DefaultRankingLimit = 10

// RankingService derives the two leaderboards from aggregated store data.
// This is the only component with derivation logic rather than direct row
// retrieval; the arithmetic lives in pure helpers so it can be tested
// without a database.
type RankingService struct {
	channels *repository.ChannelRepo
	stats    *repository.StatsRepo
	cache    *CacheService
}

func NewRankingService(channels *repository.ChannelRepo, stats *repository.StatsRepo, cache *CacheService) *RankingService {
	return &RankingService{channels: channels, stats: stats, cache: cache}
}

// SuperChatRankings computes the revenue leaderboard. All-time sums per-video
// super-chat revenue; bounded periods sum the daily revenue snapshots inside
// the window. Groups whose channel cannot be resolved are dropped.
func (s *RankingService) SuperChatRankings(ctx context.Context, period model.RankingPeriod, limit int) ([]model.RevenueRanking, error) {
	if period == "" {
		period = model.PeriodAllTime
	}
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	key := RankingKey("super-chat", string(period), limit)
	if cached := s.cachedRevenue(ctx, key); cached != nil {
		return cached, nil
	}

	var rows []model.ChannelRevenue
	var err error
	if start, bounded := PeriodStart(period, time.Now()); bounded {
		rows, err = s.stats.RevenueByChannelSince(ctx, start, limit)
	} else {
		rows, err = s.stats.AllTimeRevenueByChannel(ctx, limit)
	}
	if err != nil {
		return nil, err
	}

	channels, err := s.resolveChannels(ctx, channelIDs(rows))
	if err != nil {
		return nil, err
	}

	rankings := BuildRevenueBoard(rows, channels)
	s.store(ctx, key, rankings)
	return rankings, nil
}

// GrowthRankings computes the subscriber-growth leaderboard as the true
// delta between the latest and earliest snapshot inside the window.
func (s *RankingService) GrowthRankings(ctx context.Context, period model.RankingPeriod, limit int) ([]model.GrowthRanking, error) {
	if period == "" {
		period = model.PeriodWeekly
	}
	if limit <= 0 {
		limit = DefaultRankingLimit
	}

	key := RankingKey("growth", string(period), limit)
	if cached := s.cachedGrowth(ctx, key); cached != nil {
		return cached, nil
	}

	start, bounded := PeriodStart(period, time.Now())
	if !bounded {
		// Growth over all time is not a meaningful board; clamp to monthly.
		start, _ = PeriodStart(model.PeriodMonthly, time.Now())
	}

	snaps, err := s.stats.SubscriberSnapshotsSince(ctx, start)
	if err != nil {
		return nil, err
	}

	deltas := ComputeSubscriberDeltas(snaps)
	if len(deltas) > limit {
		deltas = deltas[:limit]
	}

	ids := make([]string, len(deltas))
	for i, d := range deltas {
		ids[i] = d.ChannelID
	}
	channels, err := s.resolveChannels(ctx, ids)
	if err != nil {
		return nil, err
	}

	rankings := BuildGrowthBoard(deltas, channels)
	s.store(ctx, key, rankings)
	return rankings, nil
}

// resolveChannels fetches each channel by ID, silently dropping IDs with no
// channel row. Defensive: the referential invariant makes misses unlikely.
func (s *RankingService) resolveChannels(ctx context.Context, ids []string) (map[string]model.Channel, error) {
	channels := make(map[string]model.Channel, len(ids))
	for _, id := range ids {
		ch, err := s.channels.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}
		channels[id] = *ch
	}
	return channels, nil
}

func channelIDs(rows []model.ChannelRevenue) []string {
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ChannelID
	}
	return ids
}

// BuildRevenueBoard assigns dense 1-based ranks to the pre-sorted revenue
// rows, dropping any row whose channel is absent from the lookup. Ranks stay
// gapless after drops.
func BuildRevenueBoard(rows []model.ChannelRevenue, channels map[string]model.Channel) []model.RevenueRanking {
	rankings := []model.RevenueRanking{}
	rank := 1
	for _, row := range rows {
		ch, ok := channels[row.ChannelID]
		if !ok {
			continue
		}
		rankings = append(rankings, model.RevenueRanking{
			Rank:    rank,
			Channel: ch,
			Revenue: row.Revenue,
		})
		rank++
	}
	return rankings
}

// BuildGrowthBoard assigns dense 1-based ranks to the pre-sorted deltas,
// dropping unresolved channels.
func BuildGrowthBoard(deltas []SubscriberDelta, channels map[string]model.Channel) []model.GrowthRanking {
	rankings := []model.GrowthRanking{}
	rank := 1
	for _, d := range deltas {
		ch, ok := channels[d.ChannelID]
		if !ok {
			continue
		}
		rankings = append(rankings, model.GrowthRanking{
			Rank:              rank,
			Channel:           ch,
			SubscribersGained: d.Gained,
		})
		rank++
	}
	return rankings
}

// SubscriberDelta is the gain computed for one channel over the window.
type SubscriberDelta struct {
	ChannelID string
	Gained    int
}

// ComputeSubscriberDeltas reduces a channel-then-date ordered snapshot series
// to per-channel gains (latest minus earliest), sorted by gain descending
// with channel id as the deterministic tie-break. A channel with a single
// snapshot in the window gains 0.
func ComputeSubscriberDeltas(snaps []model.SubscriberSnapshot) []SubscriberDelta {
	first := make(map[string]int)
	last := make(map[string]int)
	order := []string{}

	for _, s := range snaps {
		if _, seen := first[s.ChannelID]; !seen {
			first[s.ChannelID] = s.Subscribers
			order = append(order, s.ChannelID)
		}
		last[s.ChannelID] = s.Subscribers
	}

	deltas := make([]SubscriberDelta, 0, len(order))
	for _, id := range order {
		deltas = append(deltas, SubscriberDelta{
			ChannelID: id,
			Gained:    last[id] - first[id],
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Gained != deltas[j].Gained {
			return deltas[i].Gained > deltas[j].Gained
		}
		return deltas[i].ChannelID < deltas[j].ChannelID
	})
	return deltas
}

// PeriodStart returns the window's inclusive start date. The second return
// is false for the unbounded all-time period.
func PeriodStart(period model.RankingPeriod, now time.Time) (time.Time, bool) {
	switch period {
	case model.PeriodDaily:
		return now.AddDate(0, 0, -1), true
	case model.PeriodWeekly:
		return now.AddDate(0, 0, -7), true
	case model.PeriodMonthly:
		return now.AddDate(0, 0, -30), true
	default:
		return time.Time{}, false
	}
}

func (s *RankingService) cachedRevenue(ctx context.Context, key string) []model.RevenueRanking {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: ranking get error")
		return nil
	}
	if data == nil {
		return nil
	}
	var rankings []model.RevenueRanking
	if err := json.Unmarshal(data, &rankings); err != nil {
		return nil
	}
	return rankings
}

func (s *RankingService) cachedGrowth(ctx context.Context, key string) []model.GrowthRanking {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: ranking get error")
		return nil
	}
	if data == nil {
		return nil
	}
	var rankings []model.GrowthRanking
	if err := json.Unmarshal(data, &rankings); err != nil {
		return nil
	}
	return rankings
}

func (s *RankingService) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value, RankingCacheTTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache: ranking set error")
	}
}
