// Package tag serves the global tag catalogue.
package tag

import (
	"context"

	apperrors "ledgerly/internal/errors"
	"ledgerly/internal/logging"
	"ledgerly/internal/models"
	"ledgerly/internal/repositories"
)

type Service interface {
	List(ctx context.Context) ([]models.Tag, error)

	// Seed installs the predefined catalogue. It is safe to run repeatedly.
	Seed(ctx context.Context) ([]models.Tag, error)
}

type service struct {
	tags repositories.TagRepository
}

func NewService(tags repositories.TagRepository) Service {
	return &service{tags: tags}
}

func (s *service) List(ctx context.Context) ([]models.Tag, error) {
	tags, err := s.tags.List(ctx)
	if err != nil {
		return nil, apperrors.Store("list tags", err)
	}
	if tags == nil {
		tags = []models.Tag{}
	}
	return tags, nil
}

func (s *service) Seed(ctx context.Context) ([]models.Tag, error) {
	tags := make([]models.Tag, len(models.PredefinedTags))
	copy(tags, models.PredefinedTags)
	if err := s.tags.Upsert(ctx, tags); err != nil {
		return nil, apperrors.Store("seed tags", err)
	}
	logging.Default.Info("Seeded %d predefined tags", len(tags))
	return s.List(ctx)
}
