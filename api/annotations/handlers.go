package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/annotator"
)

// Add creates a new entity annotation on a text unit
// @Summary      Add annotation
// @Description  Create an entity over a character span of a text unit. Overlapping spans are accepted; span bounds and label are validated.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Text ID"
// @Param        request body types.AddAnnotationRequest true "Span, label, and session"
// @Success      201 {object} types.AnnotationResponse "Created entity"
// @Failure      400 {object} types.ErrorResponse "Invalid span or missing label"
// @Failure      404 {object} types.ErrorResponse "Session or text not found"
// @Router       /api/v1/texts/{id}/annotations [post]
func Add(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		textID := c.Param("id")

		var req types.AddAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.SessionManager.Get(req.SessionID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		// First touch of a text in this session opens its store seeded
		// from persistence and claims the unit.
		if _, err := session.Store(textID); err != nil {
			unit, err := deps.TextService.GetByTextID(c.Request.Context(), textID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			existing, err := deps.AnnotationService.LoadExisting(c.Request.Context(), textID)
			if err != nil {
				types.SendAppError(c, err)
				return
			}
			session.Open(textID, unit.Content, existing)
			if err := deps.TextService.MarkInProgress(c.Request.Context(), textID); err != nil {
				types.SendAppError(c, err)
				return
			}
		}

		entity, err := session.Add(textID, annotator.Span{Start: req.Start, End: req.End}, req.Label)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.AnnotationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "annotation added"},
			Entity:       entity,
		})
	}
}

// Remove deletes an entity annotation
// @Summary      Remove annotation
// @Description  Delete an entity from a text unit's active set. The audit entry records who removed it; the entity payload keeps its original author.
// @Tags         annotations
// @Accept       json
// @Produce      json
// @Param        id path string true "Annotation ID"
// @Param        request body types.RemoveAnnotationRequest true "Session and text the entity belongs to"
// @Success      200 {object} types.AnnotationResponse "Removed entity"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Session, text, or annotation not found"
// @Router       /api/v1/annotations/{id} [delete]
func Remove(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		entityID := c.Param("id")

		var req types.RemoveAnnotationRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		session, err := deps.SessionManager.Get(req.SessionID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		entity, err := session.Remove(req.TextID, entityID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.AnnotationResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "annotation removed"},
			Entity:       entity,
		})
	}
}
