package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/services"
)

func (handler *Handler) GetWeek(c *fiber.Ctx) error {
	anchor := time.Now()
	if start := c.Query("start"); start != "" {
		parsed, err := parseDayParam(start)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start date")
		}
		anchor = parsed
	}

	days := handler.planner.WeekDays(anchor)
	grouped, err := handler.planner.AssignmentsByDay(days)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load assignments")
	}

	meals, err := handler.meals.FetchAllMeals()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}
	mealsByID := services.MealsByID(meals)

	dayViews := make([]WeekDayView, 0, len(days))
	for _, day := range days {
		dayViews = append(dayViews, WeekDayView{
			Date:        formatDay(day),
			Assignments: buildAssignmentViews(grouped[day], mealsByID),
		})
	}

	return c.JSON(WeekView{
		WeekStart:         formatDay(days[0]),
		PreviousWeekStart: formatDay(handler.planner.PreviousWeekStart(anchor)),
		NextWeekStart:     formatDay(handler.planner.NextWeekStart(anchor)),
		Days:              dayViews,
	})
}

func (handler *Handler) CreateAssignment(c *fiber.Ctx) error {
	payload := assignmentPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	mealID, err := uuid.Parse(payload.MealID)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	day, err := parseDayParam(payload.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	assignment, err := handler.planner.AssignMeal(mealID, day)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save assignment")
	}

	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (handler *Handler) DeleteAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid assignment id")
	}

	if err := handler.planner.RemoveAssignment(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to remove assignment")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func buildAssignmentViews(assignments []models.MealAssignment, mealsByID map[uuid.UUID]models.Meal) []AssignmentView {
	views := make([]AssignmentView, 0, len(assignments))
	for _, assignment := range assignments {
		view := AssignmentView{
			ID:     assignment.ID,
			MealID: assignment.MealID,
			Date:   formatDay(assignment.Date),
		}
		// Assignments may outlive their meal; unresolvable ids render
		// without a meal body instead of failing.
		if meal, exists := mealsByID[assignment.MealID]; exists {
			mealCopy := meal
			view.Meal = &mealCopy
		}
		views = append(views, view)
	}
	return views
}
