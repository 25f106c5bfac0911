package repositories

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/uptrace/bun"
)

type standingRow struct {
	UserID      int64        `bun:"user_id"`
	UserName    string       `bun:"user_name"`
	CompanionID int64        `bun:"companion_id"`
	KindName    string       `bun:"kind_name"`
	AssetKey    string       `bun:"asset_key"`
	Stage       models.Stage `bun:"stage"`
	Level       int          `bun:"level"`
	Exp         int64        `bun:"exp"`
	State       string       `bun:"state"`
}

type leaderboardRepository struct {
	db bun.IDB
}

// NewLeaderboardRepository reads standings straight from users and their
// active companions.
func NewLeaderboardRepository(db bun.IDB) leaderboard.Source {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) Standings(ctx context.Context, limit int) ([]leaderboard.Entry, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var rows []standingRow
	err := r.db.NewSelect().
		TableExpr("users AS u").
		Join("JOIN companions AS c ON c.id = u.active_companion_id").
		Join("JOIN character_kinds AS ck ON ck.id = c.character_kind_id").
		ColumnExpr("u.id AS user_id, u.name AS user_name").
		ColumnExpr("c.id AS companion_id, c.level, c.exp, c.state").
		ColumnExpr("ck.name AS kind_name, ck.asset_key, ck.stage").
		Where("c.state = ?", models.CompanionAlive).
		Order("c.level DESC", "c.exp DESC").
		Limit(limit).
		Scan(ctx, &rows)
	if err != nil {
		return nil, handleError("standings", "leaderboard", limit, err)
	}

	entries := make([]leaderboard.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, leaderboard.Entry{
			UserID:      row.UserID,
			UserName:    row.UserName,
			CompanionID: row.CompanionID,
			KindName:    row.KindName,
			AssetKey:    row.AssetKey,
			Stage:       row.Stage,
			Level:       row.Level,
			Exp:         row.Exp,
			Alive:       row.State == string(models.CompanionAlive),
		})
	}
	return entries, nil
}
