package service

import "strings"

// ParseIngredientList splits a comma-separated model response into ingredient
// names. Tokens are whitespace-trimmed, empty tokens are dropped, and order is
// preserved. Duplicates are kept as-is. The model's output format is not
// contractually guaranteed, so this never fails: a comma-free response yields
// a single-element list and an empty response yields an empty list.
func ParseIngredientList(raw string) []string {
	ingredients := []string{}
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		ingredients = append(ingredients, token)
	}
	return ingredients
}
