package texts

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
)

// Repository defines the interface for text unit data access
type Repository interface {
	CreateTextUnit(ctx context.Context, unit *models.TextUnit) error
	BulkCreateTextUnits(ctx context.Context, units []models.TextUnit) error
	GetTextUnitByTextID(ctx context.Context, textID string) (*models.TextUnit, error)
	ListTextUnits(ctx context.Context, limit int, status, assignedTo string) ([]models.TextUnit, error)
	UpdateTextUnitStatus(ctx context.Context, textID, status string) error
}

// Service defines the interface for text unit business logic
type Service interface {
	// LoadPending returns units for annotation, ordered by priority
	// descending then creation time ascending.
	LoadPending(ctx context.Context, limit int, status, assignedTo string) ([]models.TextUnit, error)

	GetByTextID(ctx context.Context, textID string) (*models.TextUnit, error)

	// BulkUpload inserts units as pending and returns how many were
	// created.
	BulkUpload(ctx context.Context, units []models.TextUnit) (int, error)

	// MarkInProgress transitions a pending unit to in_progress.
	// Reopening a unit that is already in progress is a no-op.
	MarkInProgress(ctx context.Context, textID string) error

	// MarkCompleted transitions a unit to completed after a successful
	// save.
	MarkCompleted(ctx context.Context, textID string) error
}
