package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const dayFormat = "2006-01-02"

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseDayParam(value string) (time.Time, error) {
	return time.ParseInLocation(dayFormat, value, time.Local)
}

func formatDay(day time.Time) string {
	return day.Format(dayFormat)
}
