package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
	"github.com/killallgit/annotator-api/internal/models"
)

// Get returns persisted per-user annotation statistics
// @Summary      User statistics
// @Description  Aggregate active annotations per user: totals, distinct texts, first/last timestamps, ordered by total descending. With session_id, live session activity (including removes) is returned instead.
// @Tags         stats
// @Produce      json
// @Param        user_id path string false "Restrict to one user"
// @Param        session_id query string false "Report a live session ledger instead"
// @Success      200 {object} types.UserStatsResponse "Per-user aggregates"
// @Failure      404 {object} types.ErrorResponse "Session not found"
// @Failure      502 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/stats [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if sessionID := c.Query("session_id"); sessionID != "" {
			session, err := deps.SessionManager.Get(sessionID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			users := session.Statistics()
			if userID != "" {
				filtered := make([]annotator.UserActivity, 0, 1)
				for _, u := range users {
					if u.UserID == userID {
						filtered = append(filtered, u)
					}
				}
				users = filtered
			}
			types.SendSuccess(c, types.SessionStatsResponse{
				BaseResponse: types.BaseResponse{Status: types.StatusOK},
				Users:        users,
			})
			return
		}

		users, err := deps.AnnotationService.UserStatistics(c.Request.Context(), userID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		if users == nil {
			users = []models.UserStats{}
		}
		types.SendSuccess(c, types.UserStatsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Users:        users,
		})
	}
}
