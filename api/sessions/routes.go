package sessions

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers session lifecycle routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", Start(deps))
	group.GET("/:id", Get(deps))
	group.DELETE("/:id", End(deps))
}
