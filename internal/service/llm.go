package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// LLMService handles interactions with the chat-completions API
type LLMService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(timeout time.Duration) (*LLMService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
		}

		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}

		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("OPENAI_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/chat/completions"
	}

	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &LLMService{
		apiKey: apiKey,
		apiURL: apiURL,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal user message
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL carries an inline image as a data URI
type ImageURL struct {
	URL string `json:"url"`
}

// Request represents a request to the chat-completions API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

// complete submits a single chat-completions request and returns the
// generated text. No retries; failures surface to the caller.
func (s *LLMService) complete(ctx context.Context, messages []Message, temperature float64) (string, error) {
	reqBody := Request{
		Model:       s.model,
		Messages:    messages,
		Temperature: temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no response from API")
	}

	return result.Choices[0].Message.Content, nil
}

// ExtractIngredients identifies the food ingredients visible in an image.
// The image is sent inline as a base64 data URI.
func (s *LLMService) ExtractIngredients(ctx context.Context, imageData []byte, mimeType string) ([]string, error) {
	encoded := base64.StdEncoding.EncodeToString(imageData)

	messages := []Message{
		{
			Role: "user",
			Content: []ContentPart{
				{Type: "text", Text: ingredientExtractionPrompt},
				{Type: "image_url", ImageURL: &ImageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", mimeType, encoded),
				}},
			},
		},
	}

	content, err := s.complete(ctx, messages, 0.2)
	if err != nil {
		return nil, err
	}

	return ParseIngredientList(content), nil
}

// GenerateRecipe produces a full recipe from an ingredient list and optional
// constraints. The response text is returned unparsed.
func (s *LLMService) GenerateRecipe(ctx context.Context, ingredients, cuisine, dietaryRestrictions string) (string, error) {
	messages := []Message{
		{
			Role:    "system",
			Content: "You are a professional chef. Write clear, complete recipes that home cooks can follow.",
		},
		{
			Role:    "user",
			Content: BuildRecipePrompt(ingredients, cuisine, dietaryRestrictions),
		},
	}

	return s.complete(ctx, messages, 0.7)
}

// GenerateVideoSearchQuery asks for a short search query suited to finding an
// instructional cooking video for the recipe.
func (s *LLMService) GenerateVideoSearchQuery(ctx context.Context, recipeName, ingredients, cuisine string) (string, error) {
	messages := []Message{
		{
			Role:    "user",
			Content: BuildVideoQueryPrompt(recipeName, ingredients, cuisine),
		},
	}

	content, err := s.complete(ctx, messages, 0.3)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(content), nil
}
