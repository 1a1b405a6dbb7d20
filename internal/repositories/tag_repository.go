package repositories

import (
	"context"

	"ledgerly/internal/models"
)

// TagRepository reads the global tag catalogue.
type TagRepository interface {
	// List returns every tag ordered by title.
	List(ctx context.Context) ([]models.Tag, error)

	// GetByIDs returns the tags that exist among ids.
	GetByIDs(ctx context.Context, ids []string) ([]models.Tag, error)

	// Upsert inserts tags by title, refreshing the emoji of existing ones.
	Upsert(ctx context.Context, tags []models.Tag) error
}
