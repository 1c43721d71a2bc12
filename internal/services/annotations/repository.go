package annotations

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/killallgit/annotator-api/internal/models"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new annotation repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// SaveSnapshot replaces the active set for a text inside one
// transaction. Prior rows are deactivated rather than deleted so the
// audit view keeps seeing them.
func (r *RepositoryImpl) SaveSnapshot(ctx context.Context, textID string, annotations []models.Annotation, history []models.AnnotationHistory) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Annotation{}).
			Where("text_id = ? AND is_active = ?", textID, true).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("deactivating prior annotations: %w", err)
		}

		if len(annotations) > 0 {
			if err := tx.Create(&annotations).Error; err != nil {
				return fmt.Errorf("inserting annotations: %w", err)
			}
		}

		if len(history) > 0 {
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("inserting history: %w", err)
			}
		}

		result := tx.Model(&models.TextUnit{}).
			Where("text_id = ?", textID).
			Update("status", models.TextStatusCompleted)
		if result.Error != nil {
			return fmt.Errorf("completing text unit: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving snapshot for text %s: %w", textID, err)
	}
	return nil
}

// GetActiveAnnotations retrieves active rows for a text ordered by
// start position
func (r *RepositoryImpl) GetActiveAnnotations(ctx context.Context, textID string) ([]models.Annotation, error) {
	var annotations []models.Annotation
	if err := r.db.WithContext(ctx).
		Where("text_id = ? AND is_active = ?", textID, true).
		Order("start_pos ASC").
		Find(&annotations).Error; err != nil {
		return nil, fmt.Errorf("getting annotations for text: %w", err)
	}
	return annotations, nil
}

// InsertHistory appends audit rows
func (r *RepositoryImpl) InsertHistory(ctx context.Context, rows []models.AnnotationHistory) error {
	if len(rows) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting history: %w", err)
	}
	return nil
}

// GetHistory retrieves audit rows newest-first, optionally filtered by
// text and user
func (r *RepositoryImpl) GetHistory(ctx context.Context, textID, userID string, limit int) ([]models.AnnotationHistory, error) {
	query := r.db.WithContext(ctx).Model(&models.AnnotationHistory{})
	if textID != "" {
		query = query.Where("text_id = ?", textID)
	}
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []models.AnnotationHistory
	if err := query.Order("timestamp DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("getting history: %w", err)
	}
	return rows, nil
}

// GetUserStats aggregates active annotations per user
func (r *RepositoryImpl) GetUserStats(ctx context.Context, userID string) ([]models.UserStats, error) {
	query := r.db.WithContext(ctx).Model(&models.Annotation{}).
		Select("user_id, username, COUNT(*) AS total_annotations, COUNT(DISTINCT text_id) AS texts_annotated, MIN(annotated_at) AS first_annotation, MAX(annotated_at) AS last_annotation").
		Where("is_active = ?", true)
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var stats []models.UserStats
	if err := query.
		Group("user_id, username").
		Order("total_annotations DESC").
		Scan(&stats).Error; err != nil {
		return nil, fmt.Errorf("aggregating user stats: %w", err)
	}
	return stats, nil
}

// UpsertSession inserts or refreshes a session bookkeeping row
func (r *RepositoryImpl) UpsertSession(ctx context.Context, session *models.AnnotationSession) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"last_activity", "end_time", "texts_annotated", "total_annotations",
			}),
		}).
		Create(session).Error
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}
	return nil
}
