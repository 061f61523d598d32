package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"vibecode-be/internal/pkg/logger"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into
// JSON responses. AppError and fiber.Error keep their status; anything
// else is logged and masked as a 500.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return c.Status(appErr.Status).JSON(fiber.Map{"message": appErr.Message})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  c.Path(),
			"error": err.Error(),
		})
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "internal server error",
		})
	}
}
