package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/habitpet/habitpet/backend/utils"
)

// RateLimit allows limit requests per window for each authenticated user,
// falling back to the client IP. It must run after AuthRequired.
func RateLimit(limit int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if id, ok := utils.UserID(c); ok {
				return "user:" + strconv.FormatInt(id, 10)
			}
			return "ip:" + utils.ClientIP(c)
		},
		LimitReached: func(c *fiber.Ctx) error {
			slog.Warn("Rate limit exceeded",
				slog.String("type", "http"),
				slog.String("path", c.Path()),
				slog.String("request_id", utils.RequestID(c)))
			return utils.SendError(c, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, slow down", nil)
		},
	})
}
