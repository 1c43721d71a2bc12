package texts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/pkg/export"
)

// Export renders a text's persisted annotation state as a training document
// @Summary      Export annotations
// @Description  Build a training-ready JSON document with the text, its active entities, the full audit trail, and summary totals
// @Tags         texts
// @Produce      json
// @Param        id path string true "Text ID"
// @Success      200 {object} export.Document "Export document"
// @Failure      404 {object} types.ErrorResponse "Text not found"
// @Failure      502 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/texts/{id}/export [get]
func Export(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		textID := c.Param("id")

		unit, err := deps.TextService.GetByTextID(c.Request.Context(), textID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		entities, err := deps.AnnotationService.LoadExisting(c.Request.Context(), textID)
		if err != nil {
			types.SendAppError(c, err)
			return
		}
		history, err := deps.AnnotationService.History(c.Request.Context(), textID, "", 0)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		// History comes back newest-first; the document carries it in
		// event order.
		for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
			history[i], history[j] = history[j], history[i]
		}

		types.SendSuccess(c, export.Build(textID, unit.Content, entities, history))
	}
}
