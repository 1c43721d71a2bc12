package annotations

import (
	"context"

	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
)

// Repository defines the interface for annotation data access
type Repository interface {
	// SaveSnapshot atomically replaces the active annotation set for a
	// text, appends the given history rows, and marks the text
	// completed. On failure nothing is written.
	SaveSnapshot(ctx context.Context, textID string, annotations []models.Annotation, history []models.AnnotationHistory) error

	// GetActiveAnnotations returns the active rows for a text ordered
	// by start position ascending.
	GetActiveAnnotations(ctx context.Context, textID string) ([]models.Annotation, error)

	InsertHistory(ctx context.Context, rows []models.AnnotationHistory) error
	GetHistory(ctx context.Context, textID, userID string, limit int) ([]models.AnnotationHistory, error)

	GetUserStats(ctx context.Context, userID string) ([]models.UserStats, error)

	UpsertSession(ctx context.Context, session *models.AnnotationSession) error
}

// Service defines the Persistence Store boundary used by the handlers.
// Failures surface as PERSISTENCE errors and never mutate the caller's
// in-memory session state, so a retry with the same state is safe.
type Service interface {
	// LoadExisting seeds an entity store when reopening a text.
	LoadExisting(ctx context.Context, textID string) ([]annotator.Entity, error)

	// SaveAnnotations persists the current entity snapshot plus its
	// history and completes the text. Last write wins: a concurrent
	// save of the same text replaces the earlier snapshot wholesale.
	SaveAnnotations(ctx context.Context, textID string, entities []annotator.Entity, author annotator.User, sessionID string, history []annotator.HistoryEntry) error

	AppendHistory(ctx context.Context, entries []annotator.HistoryEntry) error
	History(ctx context.Context, textID, userID string, limit int) ([]annotator.HistoryEntry, error)

	UserStatistics(ctx context.Context, userID string) ([]models.UserStats, error)

	// RecordSessionActivity upserts the bookkeeping row for a session.
	RecordSessionActivity(ctx context.Context, session *models.AnnotationSession) error
}
