package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhaveshp2632005/smartrecipiBackend/internal/mocks"
	"github.com/bhaveshp2632005/smartrecipiBackend/internal/service"
)

func newAnalyzeRouter(t *testing.T, mock *mocks.MockLLMService, maxBytes int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	uploads, err := service.NewUploadService(dir, maxBytes)
	require.NoError(t, err)

	router := gin.New()
	NewAnalyzeHandler(uploads, mock).RegisterRoutes(router.Group("/api"))
	return router, dir
}

func newImageUploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze-image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func stagingDirEmpty(t *testing.T, dir string) bool {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	return len(entries) == 0
}

func TestAnalyzeImage(t *testing.T) {
	t.Run("extracts ingredients and removes the staged file", func(t *testing.T) {
		mock := &mocks.MockLLMService{
			ExtractIngredientsFunc: func(ctx context.Context, imageData []byte, mimeType string) ([]string, error) {
				assert.Equal(t, []byte("fake jpeg"), imageData)
				assert.Equal(t, "image/jpeg", mimeType)
				return []string{"tomato", "onion", "garlic"}, nil
			},
		}
		router, dir := newAnalyzeRouter(t, mock, 10<<20)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageUploadRequest(t, "dinner.jpg", "image/jpeg", []byte("fake jpeg")))

		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Ingredients []string `json:"ingredients"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"tomato", "onion", "garlic"}, resp.Ingredients)
		assert.True(t, stagingDirEmpty(t, dir))
	})

	t.Run("missing file returns 400 and skips the provider", func(t *testing.T) {
		mock := &mocks.MockLLMService{}
		router, _ := newAnalyzeRouter(t, mock, 10<<20)

		req := httptest.NewRequest(http.MethodPost, "/api/analyze-image", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "No image file provided")
		assert.Zero(t, mock.ExtractCalls)
	})

	t.Run("non-image upload returns 400 and skips the provider", func(t *testing.T) {
		mock := &mocks.MockLLMService{}
		router, dir := newAnalyzeRouter(t, mock, 10<<20)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageUploadRequest(t, "notes.txt", "text/plain", []byte("not an image")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, mock.ExtractCalls)
		assert.True(t, stagingDirEmpty(t, dir))
	})

	t.Run("oversize upload returns 400 and skips the provider", func(t *testing.T) {
		mock := &mocks.MockLLMService{}
		router, dir := newAnalyzeRouter(t, mock, 8)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageUploadRequest(t, "huge.png", "image/png", []byte("more than eight bytes")))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Zero(t, mock.ExtractCalls)
		assert.True(t, stagingDirEmpty(t, dir))
	})

	t.Run("provider failure returns 500 with details and still cleans up", func(t *testing.T) {
		mock := &mocks.MockLLMService{
			ExtractIngredientsFunc: func(ctx context.Context, imageData []byte, mimeType string) ([]string, error) {
				return nil, errors.New("upstream timeout")
			},
		}
		router, dir := newAnalyzeRouter(t, mock, 10<<20)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newImageUploadRequest(t, "dinner.jpg", "image/jpeg", []byte("fake jpeg")))

		require.Equal(t, http.StatusInternalServerError, w.Code)

		var resp struct {
			Error   string `json:"error"`
			Details string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to analyze image", resp.Error)
		assert.Equal(t, "upstream timeout", resp.Details)
		assert.True(t, stagingDirEmpty(t, dir))
	})
}
