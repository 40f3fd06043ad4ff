package db

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/storage"
)

// MealRepository keeps the whole meal collection under one storage key.
// Every mutation reads the full collection, applies the change and writes
// it back; callers must serialize concurrent mutations themselves.
type MealRepository struct {
	store storage.Store
}

func NewMealRepository(store storage.Store) *MealRepository {
	return &MealRepository{store: store}
}

// SaveMeal upserts by id: an existing record with the same id is replaced
// in place, otherwise the meal is appended.
func (repo *MealRepository) SaveMeal(meal models.Meal) error {
	meals, err := repo.FetchAllMeals()
	if err != nil {
		return err
	}

	replaced := false
	for index, existing := range meals {
		if existing.ID == meal.ID {
			meals[index] = meal
			replaced = true
			break
		}
	}
	if !replaced {
		meals = append(meals, meal)
	}

	return repo.store.Save(storage.MealsKey, meals)
}

func (repo *MealRepository) FetchAllMeals() ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if _, err := repo.store.Fetch(storage.MealsKey, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// DeleteMeal removes the record with the given id; deleting an absent id
// is a no-op, not an error.
func (repo *MealRepository) DeleteMeal(id uuid.UUID) error {
	meals, err := repo.FetchAllMeals()
	if err != nil {
		return err
	}

	remaining := make([]models.Meal, 0, len(meals))
	for _, meal := range meals {
		if meal.ID != id {
			remaining = append(remaining, meal)
		}
	}

	return repo.store.Save(storage.MealsKey, remaining)
}

// UpdateMeal is SaveMeal under a distinct name, kept for call-site clarity.
func (repo *MealRepository) UpdateMeal(meal models.Meal) error {
	return repo.SaveMeal(meal)
}
