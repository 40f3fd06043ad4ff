package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/services"
)

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	meals, err := handler.meals.FetchAllMeals()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}

	criteria := parseFilterCriteria(c)
	return c.JSON(services.FilterMeals(meals, criteria))
}

func (handler *Handler) FilterOptions(c *fiber.Ctx) error {
	meals, err := handler.meals.FetchAllMeals()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}

	return c.JSON(FilterOptionsView{
		Proteins:   services.UniqueProteins(meals),
		Carbs:      services.UniqueCarbs(meals),
		Components: services.UniqueComponents(meals),
	})
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	input, err := parseMealPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input, err = services.NormalizeMealInput(input)
	if err != nil {
		if errors.Is(err, services.ErrEmptyDescription) {
			return apiError(c, fiber.StatusBadRequest, "meal description is required")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	meal := models.NewMeal(input.Description, input.PrimaryProtein, input.PrimaryCarb, input.OtherComponents)
	if err := handler.meals.SaveMeal(meal); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}

	return c.Status(fiber.StatusCreated).JSON(meal)
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	input, err := parseMealPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input, err = services.NormalizeMealInput(input)
	if err != nil {
		if errors.Is(err, services.ErrEmptyDescription) {
			return apiError(c, fiber.StatusBadRequest, "meal description is required")
		}
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	meals, err := handler.meals.FetchAllMeals()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load meals")
	}

	existing, found := findMealByID(meals, id)
	if !found {
		return apiError(c, fiber.StatusNotFound, "meal not found")
	}

	// Full replacement under the same id; the original id and creation
	// time survive the update.
	existing.Description = input.Description
	existing.PrimaryProtein = input.PrimaryProtein
	existing.PrimaryCarb = input.PrimaryCarb
	existing.OtherComponents = input.OtherComponents

	if err := handler.meals.UpdateMeal(existing); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update meal")
	}

	return c.JSON(existing)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	if err := handler.meals.DeleteMeal(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete meal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func findMealByID(meals []models.Meal, id uuid.UUID) (models.Meal, bool) {
	for _, meal := range meals {
		if meal.ID == id {
			return meal, true
		}
	}
	return models.Meal{}, false
}
