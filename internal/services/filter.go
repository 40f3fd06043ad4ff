package services

import (
	"sort"
	"strings"

	"github.com/terraincognita07/savor/internal/models"
)

// FilterMeals returns the meals satisfying every active predicate in the
// criteria. Inactive criteria return the input unchanged. Protein and carb
// comparisons lowercase both sides; the component predicate requires the
// meal's folded component set to contain every folded filter component.
func FilterMeals(meals []models.Meal, criteria models.FilterCriteria) []models.Meal {
	if !criteria.IsActive() {
		return meals
	}

	filtered := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		if mealMatchesCriteria(meal, criteria) {
			filtered = append(filtered, meal)
		}
	}
	return filtered
}

func mealMatchesCriteria(meal models.Meal, criteria models.FilterCriteria) bool {
	if criteria.Protein != nil && strings.ToLower(meal.PrimaryProtein) != strings.ToLower(*criteria.Protein) {
		return false
	}
	if criteria.Carb != nil && strings.ToLower(meal.PrimaryCarb) != strings.ToLower(*criteria.Carb) {
		return false
	}

	if len(criteria.Components) > 0 {
		mealComponents := make(map[string]struct{}, len(meal.OtherComponents))
		for _, component := range meal.OtherComponents {
			mealComponents[strings.ToLower(component)] = struct{}{}
		}
		for _, required := range criteria.Components {
			if _, present := mealComponents[strings.ToLower(required)]; !present {
				return false
			}
		}
	}

	return true
}

// UniqueProteins lists the distinct protein values present across the
// meals, sorted ascending. Deduplication is verbatim: values differing
// only in case stay separate entries even though FilterMeals treats them
// as equal.
func UniqueProteins(meals []models.Meal) []string {
	values := make([]string, 0, len(meals))
	for _, meal := range meals {
		values = append(values, meal.PrimaryProtein)
	}
	return sortedUnique(values)
}

func UniqueCarbs(meals []models.Meal) []string {
	values := make([]string, 0, len(meals))
	for _, meal := range meals {
		values = append(values, meal.PrimaryCarb)
	}
	return sortedUnique(values)
}

func UniqueComponents(meals []models.Meal) []string {
	values := make([]string, 0)
	for _, meal := range meals {
		values = append(values, meal.OtherComponents...)
	}
	return sortedUnique(values)
}

func sortedUnique(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	unique := make([]string, 0, len(values))
	for _, value := range values {
		if _, exists := seen[value]; exists {
			continue
		}
		seen[value] = struct{}{}
		unique = append(unique, value)
	}
	sort.Strings(unique)
	return unique
}
