package services

import (
	"errors"
	"strings"
)

var ErrEmptyDescription = errors.New("meal description is required")

type MealInput struct {
	Description     string
	PrimaryProtein  string
	PrimaryCarb     string
	OtherComponents []string
}

// NormalizeMealInput trims every field and rejects input whose description
// is empty after trimming. Blank components are dropped; empty protein and
// carb tags stay valid.
func NormalizeMealInput(input MealInput) (MealInput, error) {
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return input, ErrEmptyDescription
	}

	input.PrimaryProtein = strings.TrimSpace(input.PrimaryProtein)
	input.PrimaryCarb = strings.TrimSpace(input.PrimaryCarb)

	components := make([]string, 0, len(input.OtherComponents))
	for _, component := range input.OtherComponents {
		trimmed := strings.TrimSpace(component)
		if trimmed == "" {
			continue
		}
		components = append(components, trimmed)
	}
	input.OtherComponents = components

	return input, nil
}
