package texts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
)

// Get returns one text unit with its current entities
// @Summary      Get text unit
// @Description  Retrieve a text unit and its entities. With session_id, the live in-session view is returned; otherwise the persisted active set.
// @Tags         texts
// @Produce      json
// @Param        id path string true "Text ID"
// @Param        session_id query string false "Session to read the live entity set from"
// @Success      200 {object} types.SingleTextResponse "Text unit with entities"
// @Failure      404 {object} types.ErrorResponse "Text not found"
// @Failure      502 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/texts/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		textID := c.Param("id")

		unit, err := deps.TextService.GetByTextID(c.Request.Context(), textID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		var entities []annotator.Entity
		if sessionID := c.Query("session_id"); sessionID != "" {
			session, err := deps.SessionManager.Get(sessionID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			if store, err := session.Store(textID); err == nil {
				entities = store.Entities()
			}
		}
		if entities == nil {
			entities, err = deps.AnnotationService.LoadExisting(c.Request.Context(), textID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
		}

		types.SendSuccess(c, types.SingleTextResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Text:         unit,
			Entities:     entities,
		})
	}
}
