package mocks

import "context"

// MockLLMService is a mock implementation of the LLM service. Each operation
// counts its calls so tests can assert the provider was (not) invoked.
type MockLLMService struct {
	ExtractIngredientsFunc       func(ctx context.Context, imageData []byte, mimeType string) ([]string, error)
	GenerateRecipeFunc           func(ctx context.Context, ingredients, cuisine, dietaryRestrictions string) (string, error)
	GenerateVideoSearchQueryFunc func(ctx context.Context, recipeName, ingredients, cuisine string) (string, error)

	ExtractCalls int
	RecipeCalls  int
	VideoCalls   int
}

func (m *MockLLMService) ExtractIngredients(ctx context.Context, imageData []byte, mimeType string) ([]string, error) {
	m.ExtractCalls++
	if m.ExtractIngredientsFunc != nil {
		return m.ExtractIngredientsFunc(ctx, imageData, mimeType)
	}
	return []string{}, nil
}

func (m *MockLLMService) GenerateRecipe(ctx context.Context, ingredients, cuisine, dietaryRestrictions string) (string, error) {
	m.RecipeCalls++
	if m.GenerateRecipeFunc != nil {
		return m.GenerateRecipeFunc(ctx, ingredients, cuisine, dietaryRestrictions)
	}
	return "", nil
}

func (m *MockLLMService) GenerateVideoSearchQuery(ctx context.Context, recipeName, ingredients, cuisine string) (string, error) {
	m.VideoCalls++
	if m.GenerateVideoSearchQueryFunc != nil {
		return m.GenerateVideoSearchQueryFunc(ctx, recipeName, ingredients, cuisine)
	}
	return "", nil
}
