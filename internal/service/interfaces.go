package service

import "context"

// LLMServiceInterface defines the inference operations used by the HTTP handlers
type LLMServiceInterface interface {
	ExtractIngredients(ctx context.Context, imageData []byte, mimeType string) ([]string, error)
	GenerateRecipe(ctx context.Context, ingredients, cuisine, dietaryRestrictions string) (string, error)
	GenerateVideoSearchQuery(ctx context.Context, recipeName, ingredients, cuisine string) (string, error)
}
