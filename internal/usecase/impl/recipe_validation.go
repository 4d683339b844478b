package impl

import (
	"strings"
	"unicode/utf8"

	"ladle/internal/usecase"
)

// minInstructionsLength is measured in runes, not bytes, so multibyte text
// is not penalized.
const minInstructionsLength = 50

// validateRecipe runs every check and returns the full list of violations.
// The messages are part of the API contract; clients match on them.
func validateRecipe(input *usecase.CreateRecipeInput) []string {
	var messages []string

	if strings.TrimSpace(input.Title) == "" {
		messages = append(messages, "Title is required.")
	}

	if utf8.RuneCountInString(input.Instructions) < minInstructionsLength {
		messages = append(messages, "Instructions must be at least 50 characters long.")
	}

	return messages
}
