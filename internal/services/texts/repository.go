package texts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new text unit repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreateTextUnit creates a new text unit in the database
func (r *RepositoryImpl) CreateTextUnit(ctx context.Context, unit *models.TextUnit) error {
	if err := r.db.WithContext(ctx).Create(unit).Error; err != nil {
		return fmt.Errorf("creating text unit: %w", err)
	}
	return nil
}

// BulkCreateTextUnits inserts a batch of text units
func (r *RepositoryImpl) BulkCreateTextUnits(ctx context.Context, units []models.TextUnit) error {
	if len(units) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&units).Error; err != nil {
		return fmt.Errorf("bulk creating text units: %w", err)
	}
	return nil
}

// GetTextUnitByTextID retrieves a text unit by its opaque text id
func (r *RepositoryImpl) GetTextUnitByTextID(ctx context.Context, textID string) (*models.TextUnit, error) {
	var unit models.TextUnit
	if err := r.db.WithContext(ctx).Where("text_id = ?", textID).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("text", textID)
		}
		return nil, fmt.Errorf("getting text unit: %w", err)
	}
	return &unit, nil
}

// ListTextUnits retrieves units filtered by status and assignee, ordered
// by priority descending then creation time ascending
func (r *RepositoryImpl) ListTextUnits(ctx context.Context, limit int, status, assignedTo string) ([]models.TextUnit, error) {
	query := r.db.WithContext(ctx).Model(&models.TextUnit{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if assignedTo != "" {
		query = query.Where("assigned_to = ?", assignedTo)
	}

	var units []models.TextUnit
	if err := query.
		Order("priority DESC").
		Order("created_at ASC").
		Limit(limit).
		Find(&units).Error; err != nil {
		return nil, fmt.Errorf("listing text units: %w", err)
	}
	return units, nil
}

// UpdateTextUnitStatus updates the status of a text unit
func (r *RepositoryImpl) UpdateTextUnitStatus(ctx context.Context, textID, status string) error {
	result := r.db.WithContext(ctx).
		Model(&models.TextUnit{}).
		Where("text_id = ?", textID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("updating text unit status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("text", textID)
	}
	return nil
}
