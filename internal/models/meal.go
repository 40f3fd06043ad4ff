package models

import (
	"time"

	"github.com/google/uuid"
)

type Meal struct {
	ID              uuid.UUID `json:"id"`
	Description     string    `json:"description"`
	PrimaryProtein  string    `json:"primaryProtein"`
	PrimaryCarb     string    `json:"primaryCarb"`
	OtherComponents []string  `json:"otherComponents"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewMeal assigns a fresh id and creation time. Callers validate the
// description before construction; the entity accepts any string.
func NewMeal(description string, primaryProtein string, primaryCarb string, otherComponents []string) Meal {
	if otherComponents == nil {
		otherComponents = []string{}
	}
	return Meal{
		ID:              uuid.New(),
		Description:     description,
		PrimaryProtein:  primaryProtein,
		PrimaryCarb:     primaryCarb,
		OtherComponents: otherComponents,
		CreatedAt:       time.Now(),
	}
}
