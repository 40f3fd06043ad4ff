package db

import "github.com/terraincognita07/savor/internal/storage"

type Repositories struct {
	Meals       *MealRepository
	Assignments *AssignmentRepository
}

func NewRepositories(store storage.Store) *Repositories {
	return &Repositories{
		Meals:       NewMealRepository(store),
		Assignments: NewAssignmentRepository(store),
	}
}
