package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/utils"
)

// AuthRequired accepts a bearer JWT and stores its user id in the context.
func AuthRequired(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return utils.SendUnauthorized(c, "Authentication required")
		}

		userID, err := utils.ParseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			slog.Debug("Auth required: invalid token",
				slog.String("type", "http"),
				slog.String("request_id", utils.RequestID(c)),
				slog.Any("error", err))
			return utils.SendUnauthorized(c, "Invalid or expired token")
		}

		c.Locals(utils.LocalUserID, userID)
		return c.Next()
	}
}
