package api

import (
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bhaveshp2632005/smartrecipiBackend/internal/service"
)

// AnalyzeHandler handles ingredient extraction from uploaded images
type AnalyzeHandler struct {
	uploads    *service.UploadService
	llmService service.LLMServiceInterface
}

// NewAnalyzeHandler creates a new AnalyzeHandler instance
func NewAnalyzeHandler(uploads *service.UploadService, llmService service.LLMServiceInterface) *AnalyzeHandler {
	return &AnalyzeHandler{
		uploads:    uploads,
		llmService: llmService,
	}
}

// RegisterRoutes registers the image analysis routes
func (h *AnalyzeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/analyze-image", h.AnalyzeImage)
}

// AnalyzeImage extracts a list of ingredients from an uploaded photo. The
// staged copy of the upload is removed whether or not extraction succeeds.
func (h *AnalyzeHandler) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image file provided"})
		return
	}

	staged, err := h.uploads.Stage(file)
	if err != nil {
		if errors.Is(err, service.ErrNotImage) || errors.Is(err, service.ErrFileTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image", "details": err.Error()})
		return
	}
	defer h.uploads.Remove(staged)

	imageData, err := os.ReadFile(staged.FilePath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image", "details": err.Error()})
		return
	}

	ingredients, err := h.llmService.ExtractIngredients(c.Request.Context(), imageData, staged.MimeType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ingredients})
}
