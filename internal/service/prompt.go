package service

import (
	"fmt"
	"strings"
)

const ingredientExtractionPrompt = "List all the food ingredients you can identify in this image. " +
	"Respond with only a comma-separated list of ingredient names, with no additional text or formatting."

// isUnconstrained reports whether a constraint value carries no information.
// "Any" and "None" are sentinel values meaning "no constraint".
func isUnconstrained(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "any", "none":
		return true
	}
	return false
}

// BuildRecipePrompt constructs the recipe generation prompt. Sentinel
// constraint values are omitted entirely.
func BuildRecipePrompt(ingredients, cuisine, dietaryRestrictions string) string {
	var b strings.Builder

	b.WriteString("Create a detailed recipe using the following ingredients: ")
	b.WriteString(ingredients)
	b.WriteString(".")

	if !isUnconstrained(cuisine) {
		fmt.Fprintf(&b, " The recipe should be %s cuisine.", cuisine)
	}
	if !isUnconstrained(dietaryRestrictions) {
		fmt.Fprintf(&b, " It must respect these dietary restrictions: %s.", dietaryRestrictions)
	}

	b.WriteString(" Make sure every listed ingredient is used in the recipe.")
	b.WriteString(` Format the response with the following sections:
1. Recipe Name
2. Ingredients
3. Instructions
4. Cooking Time
5. Servings
6. Dietary Information
7. Tips and Variations
8. Nutritional Information`)

	return b.String()
}

// BuildVideoQueryPrompt constructs the prompt for deriving a video search
// query. Optional hints are included only when present.
func BuildVideoQueryPrompt(recipeName, ingredients, cuisine string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate a search query for finding an instructional cooking video for %q.", recipeName)

	if strings.TrimSpace(ingredients) != "" {
		fmt.Fprintf(&b, " Key ingredients: %s.", ingredients)
	}
	if !isUnconstrained(cuisine) {
		fmt.Fprintf(&b, " Cuisine: %s.", cuisine)
	}

	b.WriteString(" Respond with ONLY the search query, 5 to 10 words long.")
	b.WriteString(` Use instructional phrasing such as "recipe tutorial" or "how to make".`)
	b.WriteString(` Avoid filler superlatives like "best" or "amazing".`)

	return b.String()
}
