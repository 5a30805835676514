package service

import (
	"context"

	"github.com/tubeboard/tubeboard-go/internal/model"
	"github.com/tubeboard/tubeboard-go/internal/repository"
)

type VideoService struct {
	repo *repository.VideoRepo
}

func NewVideoService(repo *repository.VideoRepo) *VideoService {
	return &VideoService{repo: repo}
}

// List returns videos joined with their owning channel.
func (s *VideoService) List(ctx context.Context, f model.VideoFilter) ([]model.VideoWithChannel, error) {
	return s.repo.List(ctx, f)
}

// Get returns one video joined with its channel, or pgx.ErrNoRows.
func (s *VideoService) Get(ctx context.Context, id string) (*model.VideoWithChannel, error) {
	return s.repo.FindByID(ctx, id)
}

// Upsert writes a video row, insert-or-replace keyed by ID.
func (s *VideoService) Upsert(ctx context.Context, v *model.Video) error {
	return s.repo.Upsert(ctx, v)
}
