package texts

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
)

// Save persists a session's annotation snapshot for one text unit
// @Summary      Save annotations
// @Description  Persist the session's current entity set and audit trail for a text and mark the text completed. Last write wins across sessions.
// @Tags         texts
// @Accept       json
// @Produce      json
// @Param        id path string true "Text ID"
// @Param        request body types.SaveRequest true "Session to save from"
// @Success      200 {object} types.SaveResponse "Snapshot persisted"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session or text not found"
// @Failure      502 {object} types.ErrorResponse "Persistence failure; in-memory state unchanged, safe to retry"
// @Router       /api/v1/texts/{id}/save [post]
func Save(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		textID := c.Param("id")

		var req types.SaveRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.SessionManager.Get(req.SessionID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		store, err := session.Store(textID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		entities := store.Entities()
		var history []annotator.HistoryEntry
		for _, entry := range session.Ledger().Entries() {
			if entry.TextID == textID {
				history = append(history, entry)
			}
		}

		err = deps.AnnotationService.SaveAnnotations(
			c.Request.Context(), textID, entities, session.User(), session.ID(), history)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		recordSessionActivity(c, deps, session)

		types.SendSuccess(c, types.SaveResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "annotations saved"},
			TextID:       textID,
			Entities:     len(entities),
			HistoryLog:   len(history),
		})
	}
}

// recordSessionActivity refreshes the session bookkeeping row. Failures
// are swallowed: the snapshot is already durable and bookkeeping is
// advisory.
func recordSessionActivity(c *gin.Context, deps *types.Dependencies, session *annotator.Session) {
	total := 0
	for _, id := range session.OpenTextIDs() {
		if store, err := session.Store(id); err == nil {
			total += store.Len()
		}
	}
	_ = deps.AnnotationService.RecordSessionActivity(c.Request.Context(), &models.AnnotationSession{
		SessionID:        session.ID(),
		UserID:           session.User().ID,
		Username:         session.User().Name,
		StartTime:        session.StartedAt(),
		LastActivity:     time.Now().UTC(),
		TextsAnnotated:   len(session.OpenTextIDs()),
		TotalAnnotations: total,
	})
}
