package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/utils"
	"github.com/habitpet/habitpet/internal/apperr"
)

// ErrorHandler maps domain errors onto HTTP statuses. Handlers return errors
// as is and let this translate them.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		return utils.SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", verr.Details)
	}

	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return utils.SendError(c, ferr.Code, http.StatusText(ferr.Code), ferr.Message, nil)
	}

	var aerr *apperr.Error
	if errors.As(err, &aerr) && aerr.Code != apperr.CodeInternal {
		return utils.SendError(c, statusFor(aerr.Code), string(aerr.Code), aerr.Message, nil)
	}

	slog.Error("Unhandled request error",
		slog.String("type", "http"),
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("request_id", utils.RequestID(c)),
		slog.Any("error", err))
	return utils.SendInternalServerError(c, "Something went wrong")
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeInvalidOperation:
		return http.StatusUnprocessableEntity
	case apperr.CodeInsufficientResource, apperr.CodeLimitReached:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// SecurityHeaders adds security headers to responses
func SecurityHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	}
}
