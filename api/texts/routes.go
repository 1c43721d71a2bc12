package texts

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers text unit routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", List(deps))
	group.POST("", Upload(deps))
	group.GET("/:id", Get(deps))
	group.POST("/:id/save", Save(deps))
	group.GET("/:id/export", Export(deps))
}
