package annotations

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/annotator-api/api/types"
)

// RegisterRoutes registers annotation routes. Adds hang off the texts
// group; removes address the entity id directly.
func RegisterRoutes(textsGroup, rootGroup *gin.RouterGroup, deps *types.Dependencies) {
	textsGroup.POST("/:id/annotations", Add(deps))
	rootGroup.DELETE("/annotations/:id", Remove(deps))
}
