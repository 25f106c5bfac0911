package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/habitpet/habitpet/backend/models"
	"github.com/habitpet/habitpet/backend/utils"
	"github.com/habitpet/habitpet/internal/config"
)

// RankingsTop serves the cached ranking. Limits outside 1..window are
// clamped by the cache.
func RankingsTop(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", config.DefaultTopLimit)
		entries, err := app.Rankings.TopUsers(c.UserContext(), limit)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.NewRankingViews(entries), "")
	}
}

func RankingsMe(app *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := currentUser(c)
		if err != nil {
			return err
		}
		rank, ok, err := app.Rankings.RankOf(c.UserContext(), userID)
		if err != nil {
			return err
		}
		return utils.SendSuccess(c, models.MyRankView{Ranked: ok, Rank: rank}, "")
	}
}
