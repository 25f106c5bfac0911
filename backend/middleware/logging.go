package middleware

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/utils"
)

// LoggingMiddleware logs one line per request, after the error handler has
// written the response.
func LoggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			// Render the error now so the logged status is the real one.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		statusCode := c.Response().StatusCode()
		level := slog.LevelInfo
		switch {
		case statusCode >= fiber.StatusInternalServerError:
			level = slog.LevelError
		case statusCode >= fiber.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []any{
			slog.String("type", "http"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", statusCode),
			slog.Duration("took", time.Since(start)),
			slog.String("request_id", utils.RequestID(c)),
			slog.String("ip", utils.ClientIP(c)),
		}
		if userID, ok := utils.UserID(c); ok {
			attrs = append(attrs, slog.Int64("user_id", userID))
		}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}

		slog.Log(c.UserContext(), level, "HTTP request processed", attrs...)
		return nil
	}
}
