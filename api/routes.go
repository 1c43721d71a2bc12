package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/annotator-api/api/annotations"
	"github.com/killallgit/annotator-api/api/health"
	"github.com/killallgit/annotator-api/api/history"
	"github.com/killallgit/annotator-api/api/labels"
	"github.com/killallgit/annotator-api/api/sessions"
	"github.com/killallgit/annotator-api/api/stats"
	"github.com/killallgit/annotator-api/api/texts"
	"github.com/killallgit/annotator-api/api/types"
	"github.com/killallgit/annotator-api/api/version"
	_ "github.com/killallgit/annotator-api/docs/swagger"
	"github.com/killallgit/annotator-api/internal/annotator"
	annotationsService "github.com/killallgit/annotator-api/internal/services/annotations"
	textsService "github.com/killallgit/annotator-api/internal/services/texts"
	"github.com/killallgit/annotator-api/pkg/config"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if deps == nil {
		deps = &types.Dependencies{}
	}
	if deps.SessionManager == nil {
		deps.SessionManager = annotator.NewManager()
	}
	if len(deps.Labels) == 0 {
		deps.Labels = cfg.Labels.Types
	}
	if deps.HistoryLimit <= 0 {
		deps.HistoryLimit = cfg.History.DefaultLimit
	}

	// Initialize persistence-backed services if the database is available
	if deps.DB != nil && deps.DB.DB != nil {
		if deps.TextService == nil {
			deps.TextService = textsService.NewService(textsService.NewRepository(deps.DB.DB))
		}
		if deps.AnnotationService == nil {
			deps.AnnotationService = annotationsService.NewService(annotationsService.NewRepository(deps.DB.DB))
		}
	}

	rps := cfg.RateLimiting.RequestsPerSecond
	burst := cfg.RateLimiting.Burst
	if rps <= 0 {
		rps = 10
	}
	if burst <= 0 {
		burst = 20
	}
	limited := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst)

	v1 := engine.Group("/api/v1")

	// Session lifecycle needs no database
	sessionGroup := v1.Group("/sessions")
	sessionGroup.Use(limited)
	sessions.RegisterRoutes(sessionGroup, deps)

	labelGroup := v1.Group("/labels")
	labelGroup.Use(limited)
	labels.RegisterRoutes(labelGroup, deps)

	if deps.TextService != nil && deps.AnnotationService != nil {
		textGroup := v1.Group("/texts")
		textGroup.Use(limited)
		texts.RegisterRoutes(textGroup, deps)

		annotationGroup := v1.Group("")
		annotationGroup.Use(limited)
		annotations.RegisterRoutes(textGroup, annotationGroup, deps)

		historyGroup := v1.Group("/history")
		historyGroup.Use(limited)
		history.RegisterRoutes(historyGroup, deps)

		statsGroup := v1.Group("/stats")
		statsGroup.Use(limited)
		stats.RegisterRoutes(statsGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
