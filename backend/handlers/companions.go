package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/models"
	"github.com/habitpet/habitpet/backend/utils"
)

func CompanionDetail(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		companion, err := app.Lifecycle.ActiveCompanion(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewCompanionView(companion), "")
	}
}

func CompanionFeed(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		outcome, err := app.Rewards.Feed(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewOutcomeView(outcome), outcome.Notice)
	}
}

func CompanionReset(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		egg, err := app.Lifecycle.ResetCompanion(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return utils.SendCreated(c, models.NewCompanionView(egg), "A new egg has arrived")
	}
}

func CompanionCollection(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		list, err := app.Lifecycle.Collection(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewCompanionViews(list), "")
	}
}

func TitlesList(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		list, err := app.Lifecycle.Titles(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewUserTitleViews(list), "")
	}
}
