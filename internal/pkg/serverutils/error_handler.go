package serverutils

import (
	"errors"

	"eventpass-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps domain error kinds to HTTP statuses so
// controllers can simply return errors from services.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := fiber.StatusInternalServerError
		switch apperror.KindOf(err) {
		case apperror.KindNotEligible:
			status = fiber.StatusUnprocessableEntity
		case apperror.KindInvalidStateTransition:
			status = fiber.StatusConflict
		case apperror.KindInvalidAmount:
			status = fiber.StatusBadRequest
		case apperror.KindNotFound:
			status = fiber.StatusNotFound
		case apperror.KindServiceUnavailable:
			status = fiber.StatusServiceUnavailable
		}

		body := ErrorResponse(status, err.Error())
		body.Kind = string(apperror.KindOf(err))
		return ctx.Status(status).JSON(body)
	}
}
