// Package handlers exposes the domain services over HTTP.
package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/models"
	"github.com/habitpet/habitpet/backend/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	Rewards   Rewards
	Lifecycle Lifecycle
	Rankings  Rankings
	DB        Pinger
	Version   string
}

func HealthCheck(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		health := models.NewHealthCheck(app.Version)
		if app.DB != nil {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()
			if err := app.DB.Ping(ctx); err != nil {
				health.AddComponent("database", "unhealthy", err.Error())
			} else {
				health.AddComponent("database", "healthy", "")
			}
		}

		status := fiber.StatusOK
		if health.Status != "healthy" {
			status = fiber.StatusServiceUnavailable
		}
		return utils.SendJSON(c, status, health)
	}
}

func currentUser(c *fiber.Ctx) (int64, error) {
	id, ok := utils.UserID(c)
	if !ok {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Authentication required")
	}
	return id, nil
}

func taskID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, &utils.ValidationError{Details: map[string]string{"id": "must be a positive integer"}}
	}
	return id, nil
}
