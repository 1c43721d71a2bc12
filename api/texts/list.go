package texts

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// List returns text units from the annotation queue
// @Summary      List text units
// @Description  Retrieve text units for annotation, ordered by priority descending then creation time
// @Tags         texts
// @Produce      json
// @Param        limit query int false "Maximum units to return (default 10)"
// @Param        status query string false "Filter by status (pending, in_progress, completed)"
// @Param        assigned_to query string false "Filter by assigned user"
// @Success      200 {object} types.TextsResponse "Text units"
// @Failure      502 {object} types.ErrorResponse "Persistence failure"
// @Router       /api/v1/texts [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.Query("limit"))
		status := c.Query("status")
		assignedTo := c.Query("assigned_to")

		units, err := deps.TextService.LoadPending(c.Request.Context(), limit, status, assignedTo)
		if err != nil {
			types.SendAppError(c, err)
			return
		}

		types.SendSuccess(c, types.TextsResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK},
			Texts:        units,
			Count:        len(units),
		})
	}
}
