// Package audit records cascade deletes that failed part way, so operators
// can finish or inspect them later.
package audit

import (
	"context"
	"fmt"
	"time"

	"ledgerly/internal/config"
	"ledgerly/internal/logging"
	"ledgerly/internal/models"

	"gorm.io/gorm"
)

// Recorder persists cascade failures.
type Recorder interface {
	RecordCascadeFailure(ctx context.Context, failure *models.CascadeFailure) error
}

// GormRecorder writes failures to the cascade_failures table.
type GormRecorder struct {
	db *gorm.DB
}

func NewGormRecorder(db *gorm.DB) *GormRecorder {
	return &GormRecorder{db: db}
}

func (r *GormRecorder) RecordCascadeFailure(ctx context.Context, failure *models.CascadeFailure) error {
	if failure.CreatedAt.IsZero() {
		failure.CreatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Create(failure).Error; err != nil {
		return fmt.Errorf("failed to record cascade failure: %w", err)
	}
	return nil
}

// NewRecorder picks the Elasticsearch sink when it is configured and
// reachable, and the database table otherwise.
func NewRecorder(ctx context.Context, cfg config.ElasticsearchConfig, db *gorm.DB) Recorder {
	if cfg.URL == "" {
		return NewGormRecorder(db)
	}
	es, err := NewElasticsearchRecorder(ctx, cfg)
	if err != nil {
		logging.Default.Warn("Elasticsearch audit sink unavailable, using database: %v", err)
		return NewGormRecorder(db)
	}
	return es
}
