package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bhaveshp2632005/smartrecipiBackend/internal/service"
)

// RecipeHandler handles recipe generation requests
type RecipeHandler struct {
	llmService service.LLMServiceInterface
}

// NewRecipeHandler creates a new RecipeHandler instance
func NewRecipeHandler(llmService service.LLMServiceInterface) *RecipeHandler {
	return &RecipeHandler{llmService: llmService}
}

// GenerateRecipeRequest represents the request body for recipe generation
type GenerateRecipeRequest struct {
	Ingredients         string `json:"ingredients"`
	Cuisine             string `json:"cuisine"`
	DietaryRestrictions string `json:"dietaryRestrictions"`
}

// RegisterRoutes registers the recipe generation routes
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/generate-recipe", h.GenerateRecipe)
}

// GenerateRecipe produces a recipe from the supplied ingredients and optional
// cuisine and dietary constraints
func (h *RecipeHandler) GenerateRecipe(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Ingredients) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredients are required"})
		return
	}

	recipe, err := h.llmService.GenerateRecipe(c.Request.Context(), req.Ingredients, req.Cuisine, req.DietaryRestrictions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate recipe", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
