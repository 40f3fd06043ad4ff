package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	meals := api.Group("/meals")
	meals.Get("", handler.ListMeals)
	meals.Get("/filter-options", handler.FilterOptions)
	meals.Post("", handler.CreateMeal)
	meals.Put("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)

	planner := api.Group("/planner")
	planner.Get("/week", handler.GetWeek)
	planner.Post("/assignments", handler.CreateAssignment)
	planner.Delete("/assignments/:id", handler.DeleteAssignment)
}
