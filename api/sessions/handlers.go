package sessions

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
)

// Start opens a new annotation session
// @Summary      Start session
// @Description  Create a working session for a user. A username is required; a user id is generated when not supplied.
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body types.StartSessionRequest true "User starting the session"
// @Success      201 {object} types.SessionResponse "Created session"
// @Failure      400 {object} types.ErrorResponse "Missing username"
// @Router       /api/v1/sessions [post]
func Start(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StartSessionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.SessionManager.Start(annotator.User{ID: req.UserID, Name: req.Username})
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		// Bookkeeping row is advisory; the session works regardless, and
		// sessions stay available when the server runs without a database.
		if deps.AnnotationService != nil {
			_ = deps.AnnotationService.RecordSessionActivity(c.Request.Context(), &models.AnnotationSession{
				SessionID:    session.ID(),
				UserID:       session.User().ID,
				Username:     session.User().Name,
				StartTime:    session.StartedAt(),
				LastActivity: session.StartedAt(),
			})
		}

		types.SendCreated(c, types.SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "session started"},
			SessionID:    session.ID(),
			UserID:       session.User().ID,
			Username:     session.User().Name,
			StartedAt:    session.StartedAt(),
		})
	}
}

// Get returns a live session's state
// @Summary      Get session
// @Description  Retrieve a live session with the text units it has open
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.SessionResponse "Session state"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := deps.SessionManager.Get(c.Param("id"))
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.SessionResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			SessionID:    session.ID(),
			UserID:       session.User().ID,
			Username:     session.User().Name,
			StartedAt:    session.StartedAt(),
			OpenTexts:    session.OpenTextIDs(),
		})
	}
}

// End closes a session
// @Summary      End session
// @Description  Remove a session from the registry. Unsaved in-memory annotations are discarded; save each text first.
// @Tags         sessions
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} types.BaseResponse "Session ended"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Router       /api/v1/sessions/{id} [delete]
func End(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")

		session, err := deps.SessionManager.Get(sessionID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		if deps.AnnotationService != nil {
			now := time.Now().UTC()
			_ = deps.AnnotationService.RecordSessionActivity(c.Request.Context(), &models.AnnotationSession{
				SessionID:    session.ID(),
				UserID:       session.User().ID,
				Username:     session.User().Name,
				StartTime:    session.StartedAt(),
				LastActivity: now,
				EndTime:      &now,
			})
		}

		if err := deps.SessionManager.End(sessionID); err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.BaseResponse{Status: types.StatusOK, Message: "session ended"})
	}
}
