package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bhaveshp2632005/smartrecipiBackend/internal/api"
	"github.com/bhaveshp2632005/smartrecipiBackend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	analyzeHandler *api.AnalyzeHandler,
	recipeHandler *api.RecipeHandler,
	videoHandler *api.VideoHandler,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api")
	analyzeHandler.RegisterRoutes(apiGroup)
	recipeHandler.RegisterRoutes(apiGroup)
	videoHandler.RegisterRoutes(apiGroup)

	return router
}
