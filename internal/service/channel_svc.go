package service

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/tubeboard/tubeboard-go/internal/model"
	"github.com/tubeboard/tubeboard-go/internal/repository"
)

type ChannelService struct {
	repo  *repository.ChannelRepo
	cache *CacheService
}

func NewChannelService(repo *repository.ChannelRepo, cache *CacheService) *ChannelService {
	return &ChannelService{repo: repo, cache: cache}
}

// List returns channels matching the filter. Listings are not cached; the
// filter space is wide and the query is a single indexed scan.
func (s *ChannelService) List(ctx context.Context, f model.ChannelFilter) ([]model.Channel, error) {
	return s.repo.List(ctx, f)
}

// Get returns a single channel. Cache-aside: Redis first, then the store,
// then populate.
func (s *ChannelService) Get(ctx context.Context, id string) (*model.Channel, error) {
	key := ChannelKey(id)
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("channel", id).Msg("cache: channel get error")
	} else if cached != nil {
		var ch model.Channel
		if err := json.Unmarshal(cached, &ch); err == nil {
			return &ch, nil
		}
	}

	ch, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, ch, ChannelCacheTTL); err != nil {
		log.Warn().Err(err).Str("channel", id).Msg("cache: channel set error")
	}
	return ch, nil
}

// Stats returns the channel's daily snapshots in ascending date order.
func (s *ChannelService) Stats(ctx context.Context, channelID string) ([]model.DailyStat, error) {
	return s.repo.DailyStats(ctx, channelID)
}

// Upsert writes a channel and invalidates its cache entry.
func (s *ChannelService) Upsert(ctx context.Context, ch *model.Channel) error {
	if err := s.repo.Upsert(ctx, ch); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx, ChannelKey(ch.ID)); err != nil {
		log.Warn().Err(err).Str("channel", ch.ID).Msg("cache: channel invalidate error")
	}
	return nil
}
