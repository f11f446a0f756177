package serverutils

import (
	"errors"

	"anon-board-be/internal/apperrors"
	"anon-board-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps service errors onto the board's JSON error
// shape. Validation and authorization problems surface as-is with 4xx;
// storage failures are logged here and only their generic public text
// leaves the process.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *apperrors.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validationErr.Message})
		}

		var notFoundErr *apperrors.NotFoundError
		if errors.As(err, &notFoundErr) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": notFoundErr.Message})
		}

		var authErr *apperrors.AuthorizationError
		if errors.As(err, &authErr) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": authErr.Message})
		}

		var storageErr *apperrors.StorageError
		if errors.As(err, &storageErr) {
			log.Error("http", "storage failure", map[string]interface{}{
				"path":  ctx.Path(),
				"error": storageErr.Error(),
			})
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": storageErr.Public})
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(fiber.Map{"error": fiberErr.Message})
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}
