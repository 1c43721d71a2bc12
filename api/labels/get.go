package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// Get returns the configured entity label vocabulary
// @Summary      List labels
// @Description  Retrieve the label types configured for this deployment. The vocabulary is advisory; annotations may carry any non-empty label.
// @Tags         labels
// @Produce      json
// @Success      200 {object} types.LabelsResponse "Configured labels"
// @Router       /api/v1/labels [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendSuccess(c, types.LabelsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Labels:       deps.Labels,
		})
	}
}
