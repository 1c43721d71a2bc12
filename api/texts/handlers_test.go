package texts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/database"
	"github.com/killallgit/annotator-api/internal/models"
	annotationsService "github.com/killallgit/annotator-api/internal/services/annotations"
	textsService "github.com/killallgit/annotator-api/internal/services/texts"
)

func setupDeps(t *testing.T) *types.Dependencies {
	t.Helper()
	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TextUnit{},
		&models.Annotation{},
		&models.AnnotationHistory{},
		&models.AnnotationSession{},
	))
	return &types.Dependencies{
		DB:                db,
		TextService:       textsService.NewService(textsService.NewRepository(db.DB)),
		AnnotationService: annotationsService.NewService(annotationsService.NewRepository(db.DB)),
		SessionManager:    annotator.NewManager(),
		HistoryLimit:      10,
	}
}

func setupRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1/texts"), deps)
	return engine
}

func seedText(t *testing.T, deps *types.Dependencies, textID, content string) {
	t.Helper()
	_, err := deps.TextService.BulkUpload(context.Background(), []models.TextUnit{
		{TextID: textID, Content: content},
	})
	require.NoError(t, err)
}

func TestList(t *testing.T) {
	deps := setupDeps(t)
	router := setupRouter(deps)

	seedText(t, deps, "text-1", "First unit.")
	seedText(t, deps, "text-2", "Second unit.")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/texts?limit=5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.TextsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	assert.Len(t, resp.Texts, 2)
}

func TestUpload(t *testing.T) {
	t.Run("creates pending units", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)

		body := `{"texts":[{"text_id":"text-1","content":"Some text.","source":"news","priority":3}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/texts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp types.BulkUploadResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Created)

		unit, err := deps.TextService.GetByTextID(context.Background(), "text-1")
		require.NoError(t, err)
		assert.Equal(t, models.TextStatusPending, unit.Status)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)

		body := `{"texts":[{"text_id":"text-1","content":""}]}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/texts", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGet(t *testing.T) {
	t.Run("returns unit with persisted entities", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)
		seedText(t, deps, "text-1", "Tim Cook leads Apple.")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/texts/text-1", nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.SingleTextResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Text)
		assert.Equal(t, "text-1", resp.Text.TextID)
		assert.Empty(t, resp.Entities)
	})

	t.Run("returns live session view when requested", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)
		seedText(t, deps, "text-1", "Tim Cook leads Apple.")

		session, err := deps.SessionManager.Start(annotator.User{ID: "u-alice", Name: "alice"})
		require.NoError(t, err)
		session.Open("text-1", "Tim Cook leads Apple.", nil)
		_, err = session.Add("text-1", annotator.Span{Start: 0, End: 8}, "PERSON")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/texts/text-1?session_id="+session.ID(), nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.SingleTextResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Entities, 1)
		assert.Equal(t, "Tim Cook", resp.Entities[0].Text)
	})

	t.Run("unknown text is 404", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/texts/missing", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestSave(t *testing.T) {
	t.Run("persists snapshot and completes the unit", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)
		seedText(t, deps, "text-1", "Tim Cook leads Apple.")

		session, err := deps.SessionManager.Start(annotator.User{ID: "u-alice", Name: "alice"})
		require.NoError(t, err)
		session.Open("text-1", "Tim Cook leads Apple.", nil)
		_, err = session.Add("text-1", annotator.Span{Start: 0, End: 8}, "PERSON")
		require.NoError(t, err)
		entity, err := session.Add("text-1", annotator.Span{Start: 15, End: 20}, "ORGANIZATION")
		require.NoError(t, err)
		_, err = session.Remove("text-1", entity.ID)
		require.NoError(t, err)

		body := `{"session_id":"` + session.ID() + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/texts/text-1/save", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp types.SaveResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Entities, "removed entity must not be in the snapshot")
		assert.Equal(t, 3, resp.HistoryLog, "all three actions belong in the audit trail")

		unit, err := deps.TextService.GetByTextID(context.Background(), "text-1")
		require.NoError(t, err)
		assert.Equal(t, models.TextStatusCompleted, unit.Status)
	})

	t.Run("text not opened in session is 404", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)
		seedText(t, deps, "text-1", "Some text.")

		session, err := deps.SessionManager.Start(annotator.User{Name: "alice"})
		require.NoError(t, err)

		body := `{"session_id":"` + session.ID() + `"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/texts/text-1/save", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown session is 404", func(t *testing.T) {
		deps := setupDeps(t)
		router := setupRouter(deps)

		body := `{"session_id":"nope"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/texts/text-1/save", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExport(t *testing.T) {
	deps := setupDeps(t)
	router := setupRouter(deps)
	content := "Tim Cook leads Apple."
	seedText(t, deps, "text-1", content)

	session, err := deps.SessionManager.Start(annotator.User{ID: "u-alice", Name: "alice"})
	require.NoError(t, err)
	session.Open("text-1", content, nil)
	_, err = session.Add("text-1", annotator.Span{Start: 0, End: 8}, "PERSON")
	require.NoError(t, err)

	body := `{"session_id":"` + session.ID() + `"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/texts/text-1/save", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/texts/text-1/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "text-1", doc["text_id"])
	assert.Equal(t, content, doc["text"])
	assert.Len(t, doc["entities"], 1)
	assert.Len(t, doc["annotation_history"], 1)

	totals, ok := doc["totals"].(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 1, totals["total_entities"])
}
