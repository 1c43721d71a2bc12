package labels

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers label routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", Get(deps))
}
