package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/savor/internal/models"
	"github.com/terraincognita07/savor/internal/services"
)

type mealPayload struct {
	Description     string   `json:"description"`
	PrimaryProtein  string   `json:"primaryProtein"`
	PrimaryCarb     string   `json:"primaryCarb"`
	OtherComponents []string `json:"otherComponents"`
}

type assignmentPayload struct {
	MealID string `json:"mealId"`
	Date   string `json:"date"`
}

func parseMealPayload(c *fiber.Ctx) (services.MealInput, error) {
	payload := mealPayload{OtherComponents: []string{}}
	if err := c.BodyParser(&payload); err != nil {
		return services.MealInput{}, err
	}
	return services.MealInput{
		Description:     payload.Description,
		PrimaryProtein:  payload.PrimaryProtein,
		PrimaryCarb:     payload.PrimaryCarb,
		OtherComponents: payload.OtherComponents,
	}, nil
}

func parseFilterCriteria(c *fiber.Ctx) models.FilterCriteria {
	criteria := models.FilterCriteria{}

	if protein := strings.TrimSpace(c.Query("protein")); protein != "" {
		criteria.Protein = &protein
	}
	if carb := strings.TrimSpace(c.Query("carb")); carb != "" {
		criteria.Carb = &carb
	}

	components := make([]string, 0)
	for _, raw := range c.Context().QueryArgs().PeekMulti("component") {
		component := strings.TrimSpace(string(raw))
		if component != "" {
			components = append(components, component)
		}
	}
	criteria.Components = components

	return criteria
}
