package texts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/internal/models"
)

// Upload bulk-loads new text units
// @Summary      Bulk upload text units
// @Description  Insert a batch of texts as pending units ready for annotation
// @Tags         texts
// @Accept       json
// @Produce      json
// @Param        request body types.BulkUploadRequest true "Texts to load"
// @Success      201 {object} types.BulkUploadResponse "Units created"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      502 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/texts [post]
func Upload(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.BulkUploadRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		units := make([]models.TextUnit, 0, len(req.Texts))
		for _, in := range req.Texts {
			units = append(units, models.TextUnit{
				TextID:   in.TextID,
				Content:  in.Content,
				Source:   in.Source,
				Priority: in.Priority,
			})
		}

		created, err := deps.TextService.BulkUpload(c.Request.Context(), units)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendCreated(c, types.BulkUploadResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "texts loaded"},
			Created:      created,
		})
	}
}
