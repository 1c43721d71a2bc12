package annotations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
	apperrors "github.com/killallgit/annotator-api/pkg/errors"
)

// MockRepository is a mock implementation of the Repository interface
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveSnapshot(ctx context.Context, textID string, annotations []models.Annotation, history []models.AnnotationHistory) error {
	args := m.Called(ctx, textID, annotations, history)
	return args.Error(0)
}

func (m *MockRepository) GetActiveAnnotations(ctx context.Context, textID string) ([]models.Annotation, error) {
	args := m.Called(ctx, textID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Annotation), args.Error(1)
}

func (m *MockRepository) InsertHistory(ctx context.Context, rows []models.AnnotationHistory) error {
	args := m.Called(ctx, rows)
	return args.Error(0)
}

func (m *MockRepository) GetHistory(ctx context.Context, textID, userID string, limit int) ([]models.AnnotationHistory, error) {
	args := m.Called(ctx, textID, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AnnotationHistory), args.Error(1)
}

func (m *MockRepository) GetUserStats(ctx context.Context, userID string) ([]models.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserStats), args.Error(1)
}

func (m *MockRepository) UpsertSession(ctx context.Context, session *models.AnnotationSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

var testAuthor = annotator.User{ID: "u-alice", Name: "alice"}

func TestServiceImpl_SaveAnnotations(t *testing.T) {
	ctx := context.Background()

	entity := annotator.Entity{
		ID:         "e-1",
		Text:       "Tim Cook",
		Label:      "PERSON",
		Start:      0,
		End:        8,
		Confidence: 1.0,
		UserID:     "u-alice",
		Username:   "alice",
		CreatedAt:  time.Now().UTC(),
	}
	entry := annotator.HistoryEntry{
		ID:        "h-1",
		TextID:    "text-1",
		Action:    annotator.ActionAdd,
		Entity:    entity,
		UserID:    "u-alice",
		Username:  "alice",
		SessionID: "s-1",
		Timestamp: time.Now().UTC(),
	}

	t.Run("converts entities and history to rows", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("SaveSnapshot", ctx, "text-1",
			mock.AnythingOfType("[]models.Annotation"),
			mock.AnythingOfType("[]models.AnnotationHistory")).
			Run(func(args mock.Arguments) {
				rows := args.Get(2).([]models.Annotation)
				require.Len(t, rows, 1)
				assert.Equal(t, "e-1", rows[0].AnnotationID)
				assert.Equal(t, "s-1", rows[0].SessionID)
				assert.True(t, rows[0].IsActive)

				history := args.Get(3).([]models.AnnotationHistory)
				require.Len(t, history, 1)
				assert.Equal(t, "add", history[0].Action)
			}).
			Return(nil)

		err := service.SaveAnnotations(ctx, "text-1", []annotator.Entity{entity}, testAuthor, "s-1", []annotator.HistoryEntry{entry})
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects missing author", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		err := service.SaveAnnotations(ctx, "text-1", nil, annotator.User{}, "s-1", nil)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeMissingField, apperrors.GetCode(err))
		mockRepo.AssertNotCalled(t, "SaveSnapshot")
	})

	t.Run("wraps repository failures as persistence errors", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("SaveSnapshot", ctx, "text-1", mock.Anything, mock.Anything).
			Return(errors.New("connection reset"))

		err := service.SaveAnnotations(ctx, "text-1", []annotator.Entity{entity}, testAuthor, "s-1", nil)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodePersistence, apperrors.GetCode(err))
	})
}

func TestServiceImpl_LoadExisting(t *testing.T) {
	ctx := context.Background()

	t.Run("converts rows to entities", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("GetActiveAnnotations", ctx, "text-1").
			Return([]models.Annotation{
				{AnnotationID: "e-1", TextID: "text-1", EntityText: "Tim Cook", EntityLabel: "PERSON", StartPos: 0, EndPos: 8, Confidence: 1.0, UserID: "u-alice", Username: "alice"},
			}, nil)

		entities, err := service.LoadExisting(ctx, "text-1")
		require.NoError(t, err)
		require.Len(t, entities, 1)
		assert.Equal(t, "Tim Cook", entities[0].Text)
		assert.Equal(t, 1.0, entities[0].Confidence)
	})

	t.Run("wraps failures as persistence errors", func(t *testing.T) {
		mockRepo := new(MockRepository)
		service := NewService(mockRepo)

		mockRepo.On("GetActiveAnnotations", ctx, "text-1").
			Return(nil, errors.New("query timeout"))

		_, err := service.LoadExisting(ctx, "text-1")
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodePersistence, apperrors.GetCode(err))
	})
}

func TestServiceImpl_History(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	row, err := models.HistoryFromEntry(annotator.HistoryEntry{
		ID:     "h-1",
		TextID: "text-1",
		Action: annotator.ActionRemove,
		Entity: annotator.Entity{ID: "e-1", Text: "Tim Cook", Label: "PERSON", Start: 0, End: 8},
	})
	require.NoError(t, err)

	mockRepo.On("GetHistory", ctx, "text-1", "", 10).
		Return([]models.AnnotationHistory{row}, nil)

	entries, err := service.History(ctx, "text-1", "", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, annotator.ActionRemove, entries[0].Action)
	assert.Equal(t, "Tim Cook", entries[0].Entity.Text)
}

func TestServiceImpl_UserStatistics(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)

	mockRepo.On("GetUserStats", ctx, "").
		Return([]models.UserStats{
			{UserID: "u-alice", Username: "alice", TotalAnnotations: 4, TextsAnnotated: 2},
		}, nil)

	stats, err := service.UserStatistics(ctx, "")
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, 4, stats[0].TotalAnnotations)
}
