package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bhaveshp2632005/smartrecipiBackend/internal/service"
)

// VideoHandler handles recipe video search requests
type VideoHandler struct {
	llmService service.LLMServiceInterface
}

// NewVideoHandler creates a new VideoHandler instance
func NewVideoHandler(llmService service.LLMServiceInterface) *VideoHandler {
	return &VideoHandler{llmService: llmService}
}

// FindRecipeVideoRequest represents the request body for video search
type FindRecipeVideoRequest struct {
	RecipeName  string `json:"recipeName"`
	Ingredients string `json:"ingredients"`
	Cuisine     string `json:"cuisine"`
}

// RegisterRoutes registers the video search routes
func (h *VideoHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/find-recipe-video", h.FindRecipeVideo)
}

// FindRecipeVideo derives an optimized video search query for a recipe and
// formats it into ready-to-use YouTube URLs
func (h *VideoHandler) FindRecipeVideo(c *gin.Context) {
	var req FindRecipeVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.RecipeName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Recipe name is required"})
		return
	}

	query, err := h.llmService.GenerateVideoSearchQuery(c.Request.Context(), req.RecipeName, req.Ingredients, req.Cuisine)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to find recipe video", "details": err.Error()})
		return
	}

	links := service.BuildVideoLinks(query)

	c.JSON(http.StatusOK, gin.H{
		"searchQuery":           query,
		"youtubeEmbedUrl":       links.EmbedURL,
		"youtubeFirstResultUrl": links.FirstResultURL,
		"youtubeSearchUrl":      links.SearchURL,
	})
}
