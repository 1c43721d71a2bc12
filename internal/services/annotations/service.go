package annotations

import (
	"context"

	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new annotation persistence service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// LoadExisting returns the active entities for a text, ordered by start
// ascending, ready to seed an entity store.
func (s *ServiceImpl) LoadExisting(ctx context.Context, textID string) ([]annotator.Entity, error) {
	rows, err := s.repository.GetActiveAnnotations(ctx, textID)
	if err != nil {
		return nil, apperrors.PersistenceError("load", err)
	}
	entities := make([]annotator.Entity, 0, len(rows))
	for i := range rows {
		entities = append(entities, rows[i].ToEntity())
	}
	return entities, nil
}

// SaveAnnotations persists the snapshot and its history in one
// transaction and completes the text. The in-memory session state is
// never touched here, so a failed save can simply be retried.
func (s *ServiceImpl) SaveAnnotations(ctx context.Context, textID string, entities []annotator.Entity, author annotator.User, sessionID string, history []annotator.HistoryEntry) error {
	if author.Name == "" {
		return apperrors.MissingFieldError("username")
	}

	rows := make([]models.Annotation, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, models.AnnotationFromEntity(textID, sessionID, e))
	}

	historyRows := make([]models.AnnotationHistory, 0, len(history))
	for _, entry := range history {
		row, err := models.HistoryFromEntry(entry)
		if err != nil {
			return apperrors.PersistenceError("save", err)
		}
		historyRows = append(historyRows, row)
	}

	if err := s.repository.SaveSnapshot(ctx, textID, rows, historyRows); err != nil {
		return apperrors.PersistenceError("save", err)
	}
	return nil
}

// AppendHistory persists ledger entries without touching the snapshot
func (s *ServiceImpl) AppendHistory(ctx context.Context, entries []annotator.HistoryEntry) error {
	rows := make([]models.AnnotationHistory, 0, len(entries))
	for _, entry := range entries {
		row, err := models.HistoryFromEntry(entry)
		if err != nil {
			return apperrors.PersistenceError("append history", err)
		}
		rows = append(rows, row)
	}
	if err := s.repository.InsertHistory(ctx, rows); err != nil {
		return apperrors.PersistenceError("append history", err)
	}
	return nil
}

// History returns persisted audit entries newest-first
func (s *ServiceImpl) History(ctx context.Context, textID, userID string, limit int) ([]annotator.HistoryEntry, error) {
	rows, err := s.repository.GetHistory(ctx, textID, userID, limit)
	if err != nil {
		return nil, apperrors.PersistenceError("history", err)
	}
	entries := make([]annotator.HistoryEntry, 0, len(rows))
	for i := range rows {
		entry, err := rows[i].ToEntry()
		if err != nil {
			return nil, apperrors.PersistenceError("history", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// UserStatistics aggregates active annotations per user
func (s *ServiceImpl) UserStatistics(ctx context.Context, userID string) ([]models.UserStats, error) {
	stats, err := s.repository.GetUserStats(ctx, userID)
	if err != nil {
		return nil, apperrors.PersistenceError("statistics", err)
	}
	return stats, nil
}

// RecordSessionActivity upserts session bookkeeping
func (s *ServiceImpl) RecordSessionActivity(ctx context.Context, session *models.AnnotationSession) error {
	if err := s.repository.UpsertSession(ctx, session); err != nil {
		return apperrors.PersistenceError("session", err)
	}
	return nil
}
