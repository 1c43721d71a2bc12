package history

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers history routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", Get(deps))
}
