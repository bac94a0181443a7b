package serverutils

import (
	"errors"

	"trade-compliance-be/pkg/clarify"
	"trade-compliance-be/pkg/classify"

	"github.com/gofiber/fiber/v2"
)

// ErrValidation wraps request validation failures so the middleware can
// tell them apart from internal errors.
type ErrValidation struct {
	Reason string
}

func (e ErrValidation) Error() string {
	return e.Reason
}

// ErrRecordGap marks a canonical database lookup that found nothing.
// The assembler reports it as an explicit gap, the HTTP layer as 404.
var ErrRecordGap = errors.New("record not found in canonical database")

// ErrorHandlerMiddleware maps the domain error taxonomy onto HTTP status
// codes with a structured JSON body.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status := fiber.StatusInternalServerError
		var validationErr ErrValidation

		switch {
		case errors.As(err, &validationErr),
			errors.Is(err, classify.ErrInvalidQuery):
			status = fiber.StatusBadRequest
		case errors.Is(err, clarify.ErrSessionNotFound),
			errors.Is(err, ErrRecordGap):
			status = fiber.StatusNotFound
		case errors.Is(err, clarify.ErrSessionClosed):
			status = fiber.StatusConflict
		case errors.Is(err, classify.ErrEncoding),
			errors.Is(err, classify.ErrRetrievalUnavailable),
			errors.Is(err, classify.ErrRerankUnavailable),
			errors.Is(err, classify.ErrCalibratorUnavailable):
			status = fiber.StatusServiceUnavailable
		default:
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
		}

		return ctx.Status(status).JSON(fiber.Map{
			"message": err.Error(),
		})
	}
}
