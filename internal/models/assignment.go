package models

import (
	"time"

	"github.com/google/uuid"
)

type MealAssignment struct {
	ID        uuid.UUID `json:"id"`
	MealID    uuid.UUID `json:"mealId"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewMealAssignment binds a meal to a calendar day. The day is stored
// normalized to midnight; assignments are never mutated after creation.
func NewMealAssignment(mealID uuid.UUID, day time.Time) MealAssignment {
	return MealAssignment{
		ID:        uuid.New(),
		MealID:    mealID,
		Date:      StartOfDay(day),
		CreatedAt: time.Now(),
	}
}
