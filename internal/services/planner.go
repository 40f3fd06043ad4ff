package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
)

// MealRepository is the meal persistence surface the engines and handlers
// consume; db.MealRepository is the stored implementation.
type MealRepository interface {
	SaveMeal(meal models.Meal) error
	FetchAllMeals() ([]models.Meal, error)
	DeleteMeal(id uuid.UUID) error
	UpdateMeal(meal models.Meal) error
}

// AssignmentRepository is the assignment persistence surface consumed by
// the planner.
type AssignmentRepository interface {
	SaveAssignment(assignment models.MealAssignment) error
	FetchAllAssignments() ([]models.MealAssignment, error)
	FetchAssignmentsFor(day time.Time) ([]models.MealAssignment, error)
	DeleteAssignment(id uuid.UUID) error
}

// PlannerService generates week windows and manages meal-to-day bindings.
// It holds no state of its own beyond the repository it delegates to.
type PlannerService struct {
	assignments AssignmentRepository
}

func NewPlannerService(assignments AssignmentRepository) *PlannerService {
	return &PlannerService{assignments: assignments}
}

// WeekDays returns the anchor's calendar day and the six days after it,
// strictly increasing, one calendar day apart. AddDate keeps the window
// correct across month and year boundaries.
func (planner *PlannerService) WeekDays(anchor time.Time) []time.Time {
	start := models.StartOfDay(anchor)
	days := make([]time.Time, 0, 7)
	for offset := 0; offset < 7; offset++ {
		days = append(days, start.AddDate(0, 0, offset))
	}
	return days
}

// NextWeekStart and PreviousWeekStart move the anchor by whole weeks; the
// new window is WeekDays of the returned anchor.
func (planner *PlannerService) NextWeekStart(anchor time.Time) time.Time {
	return models.StartOfDay(anchor).AddDate(0, 0, 7)
}

func (planner *PlannerService) PreviousWeekStart(anchor time.Time) time.Time {
	return models.StartOfDay(anchor).AddDate(0, 0, -7)
}

// AssignMeal binds a meal to a calendar day and persists the binding. The
// meal id is not checked against the meal collection; dangling references
// are tolerated by readers instead.
func (planner *PlannerService) AssignMeal(mealID uuid.UUID, day time.Time) (models.MealAssignment, error) {
	assignment := models.NewMealAssignment(mealID, day)
	if err := planner.assignments.SaveAssignment(assignment); err != nil {
		return models.MealAssignment{}, err
	}
	return assignment, nil
}

// AssignmentsByDay fetches the whole assignment collection once and groups
// it against the given days. Every input day appears as a key, with an
// empty slice when nothing is assigned; duplicate days collapse to one
// entry.
func (planner *PlannerService) AssignmentsByDay(days []time.Time) (map[time.Time][]models.MealAssignment, error) {
	assignments, err := planner.assignments.FetchAllAssignments()
	if err != nil {
		return nil, err
	}

	grouped := make(map[time.Time][]models.MealAssignment, len(days))
	for _, day := range days {
		normalized := models.StartOfDay(day)
		matching := make([]models.MealAssignment, 0)
		for _, assignment := range assignments {
			if assignment.Date.Equal(normalized) {
				matching = append(matching, assignment)
			}
		}
		grouped[normalized] = matching
	}
	return grouped, nil
}

func (planner *PlannerService) RemoveAssignment(id uuid.UUID) error {
	return planner.assignments.DeleteAssignment(id)
}

// ResolveMeals maps assignments to their meals in assignment order,
// silently skipping ids that resolve to nothing (the meal may have been
// deleted after assignment).
func ResolveMeals(assignments []models.MealAssignment, mealsByID map[uuid.UUID]models.Meal) []models.Meal {
	resolved := make([]models.Meal, 0, len(assignments))
	for _, assignment := range assignments {
		if meal, exists := mealsByID[assignment.MealID]; exists {
			resolved = append(resolved, meal)
		}
	}
	return resolved
}

// MealsByID builds the lookup used when resolving assignments to meals.
func MealsByID(meals []models.Meal) map[uuid.UUID]models.Meal {
	byID := make(map[uuid.UUID]models.Meal, len(meals))
	for _, meal := range meals {
		byID[meal.ID] = meal
	}
	return byID
}
