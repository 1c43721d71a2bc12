package texts

import (
	"context"

	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new text unit service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// LoadPending returns units for annotation. An empty status defaults to
// pending; limit defaults to 10 when non-positive.
func (s *ServiceImpl) LoadPending(ctx context.Context, limit int, status, assignedTo string) ([]models.TextUnit, error) {
	if limit <= 0 {
		limit = 10
	}
	if status == "" {
		status = models.TextStatusPending
	}
	return s.repository.ListTextUnits(ctx, limit, status, assignedTo)
}

// GetByTextID retrieves a single text unit
func (s *ServiceImpl) GetByTextID(ctx context.Context, textID string) (*models.TextUnit, error) {
	return s.repository.GetTextUnitByTextID(ctx, textID)
}

// BulkUpload validates and inserts units as pending
func (s *ServiceImpl) BulkUpload(ctx context.Context, units []models.TextUnit) (int, error) {
	if len(units) == 0 {
		return 0, apperrors.ValidationError("texts", "at least one text is required")
	}
	for i := range units {
		if units[i].Content == "" {
			return 0, apperrors.ValidationError("content", "text content must not be empty")
		}
		units[i].Status = models.TextStatusPending
	}
	if err := s.repository.BulkCreateTextUnits(ctx, units); err != nil {
		return 0, err
	}
	return len(units), nil
}

// MarkInProgress transitions pending -> in_progress when a unit is first
// opened. Units already in progress or completed are left alone so a
// reopen never regresses the status.
func (s *ServiceImpl) MarkInProgress(ctx context.Context, textID string) error {
	unit, err := s.repository.GetTextUnitByTextID(ctx, textID)
	if err != nil {
		return err
	}
	if unit.Status != models.TextStatusPending {
		return nil
	}
	return s.repository.UpdateTextUnitStatus(ctx, textID, models.TextStatusInProgress)
}

// MarkCompleted transitions a unit to completed
func (s *ServiceImpl) MarkCompleted(ctx context.Context, textID string) error {
	return s.repository.UpdateTextUnitStatus(ctx, textID, models.TextStatusCompleted)
}
