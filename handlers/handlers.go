package handlers

import "github.com/gofiber/fiber/v2"

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}

// HandleHealthCheck godoc
// @Summary Health check
// @Success 200 {string} string "ok"
// @Router /health [get]
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.SendString("ok")
}
