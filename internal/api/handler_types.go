package api

import (
	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/services"
)

type Handler struct {
	meals   services.MealRepository
	planner *services.PlannerService
}

func NewHandler(meals services.MealRepository, assignments services.AssignmentRepository) *Handler {
	return &Handler{
		meals:   meals,
		planner: services.NewPlannerService(assignments),
	}
}

type AssignmentView struct {
	ID     uuid.UUID    `json:"id"`
	MealID uuid.UUID    `json:"mealId"`
	Date   string       `json:"date"`
	Meal   *models.Meal `json:"meal,omitempty"`
}

type WeekDayView struct {
	Date        string           `json:"date"`
	Assignments []AssignmentView `json:"assignments"`
}

type WeekView struct {
	WeekStart         string        `json:"weekStart"`
	PreviousWeekStart string        `json:"previousWeekStart"`
	NextWeekStart     string        `json:"nextWeekStart"`
	Days              []WeekDayView `json:"days"`
}

type FilterOptionsView struct {
	Proteins   []string `json:"proteins"`
	Carbs      []string `json:"carbs"`
	Components []string `json:"components"`
}
