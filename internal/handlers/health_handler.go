package handlers

import "github.com/gofiber/fiber/v2"

// HealthMessage is the body of GET /health.
const HealthMessage = "alive and healthy"

// HandleHealth reports process liveness as plain text.
func HandleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString(HealthMessage)
}
