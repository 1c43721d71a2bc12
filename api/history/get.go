package history

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
)

// Get returns the annotation audit trail newest-first
// @Summary      Query annotation history
// @Description  Retrieve audit entries newest-first, optionally filtered by text and user. With session_id, the live session ledger is queried instead of the persisted trail.
// @Tags         history
// @Produce      json
// @Param        text_id query string false "Filter by text"
// @Param        user_id query string false "Filter by user"
// @Param        limit query int false "Maximum entries (default 10, 0 for all)"
// @Param        session_id query string false "Query a live session ledger instead"
// @Success      200 {object} types.HistoryResponse "Audit entries"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      502 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/history [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		textID := c.Query("text_id")
		userID := c.Query("user_id")

		limit := deps.HistoryLimit
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				types.SendBadRequest(c, "Invalid limit")
				return
			}
			limit = parsed
		}

		var entries []annotator.HistoryEntry
		if sessionID := c.Query("session_id"); sessionID != "" {
			session, err := deps.SessionManager.Get(sessionID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			entries = session.History(annotator.HistoryFilter{
				TextID: textID,
				UserID: userID,
				Limit:  limit,
			})
		} else {
			var err error
			entries, err = deps.AnnotationService.History(c.Request.Context(), textID, userID, limit)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
		}

		if entries == nil {
			entries = []annotator.HistoryEntry{}
		}
		types.SendSuccess(c, types.HistoryResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Entries:      entries,
			Count:        len(entries),
		})
	}
}
