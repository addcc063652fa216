// Package httperr renders the service's error taxonomy as JSON responses:
// validation and conflict map to 400, bad credentials and missing tokens
// to 401, absent entities to 404, unexpected storage failures to 500.
package httperr

import "github.com/gofiber/fiber/v2"

// Validation reports field-level validation failures.
func Validation(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": fields})
}

func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// Conflict is a duplicate-resource failure. The original contract reports
// it as a plain 400, not 409.
func Conflict(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func Unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": msg})
}

func NotFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": msg})
}

func Internal(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
}
