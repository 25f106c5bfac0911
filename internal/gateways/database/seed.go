package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/habitpet/habitpet/internal/domain/titles"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/habitpet/habitpet/internal/logger"
)

func ptr(v int64) *int64 { return &v }

// characterKinds is the shipped lineage: one egg, two juveniles hatching
// from it, and adults evolving from each juvenile.
var characterKinds = []*models.CharacterKind{
	{ID: 1, Name: "Mystery Egg", Stage: models.StageEgg, AssetKey: "egg_default"},
	{ID: 2, Name: "Sprout Pup", Stage: models.StageJuvenile, AssetKey: "sprout_pup", EvolvesFromID: ptr(1)},
	{ID: 3, Name: "Ember Kit", Stage: models.StageJuvenile, AssetKey: "ember_kit", EvolvesFromID: ptr(1)},
	{ID: 4, Name: "Grove Hound", Stage: models.StageAdult, AssetKey: "grove_hound", EvolvesFromID: ptr(2)},
	{ID: 5, Name: "Moss Wolf", Stage: models.StageAdult, AssetKey: "moss_wolf", EvolvesFromID: ptr(2)},
	{ID: 6, Name: "Blaze Fox", Stage: models.StageAdult, AssetKey: "blaze_fox", EvolvesFromID: ptr(3)},
}

var seedTitles = []*models.Title{
	{Key: "first_step", Name: "First Step", Description: "Complete your first task", RuleType: titles.RuleTotalCompletions, Threshold: 1, Active: true},
	{Key: "steady_hands", Name: "Steady Hands", Description: "Complete 50 tasks", RuleType: titles.RuleTotalCompletions, Threshold: 50, Active: true},
	{Key: "record_keeper", Name: "Record Keeper", Description: "Log progress 10 times", RuleType: titles.RuleTotalLogs, Threshold: 10, Active: true},
	{Key: "long_haul", Name: "Long Haul", Description: "Log a total amount of 100", RuleType: titles.RuleLoggedAmount, Threshold: 100, Active: true},
	{Key: "week_streak", Name: "Seven Days", Description: "Stay active 7 days in a row", RuleType: titles.RuleStreakDays, Threshold: 7, Active: true},
	{Key: "hatched", Name: "Hatchling Keeper", Description: "Raise a companion to level 2", RuleType: titles.RuleCompanionLevel, Threshold: 2, Active: true},
	{Key: "grown_up", Name: "Proud Parent", Description: "Raise a companion to level 10", RuleType: titles.RuleCompanionLevel, Threshold: 10, Active: true},
	{Key: "xp_1000", Name: "Seasoned", Description: "Earn 1000 exp", RuleType: titles.RuleTotalXP, Threshold: 1000, Active: true},
}

// SeedMasterData inserts species and titles. Existing rows are left alone,
// so edits made by operators survive a re-run.
func (db *DB) SeedMasterData(ctx context.Context) error {
	res, err := db.bunDB.NewInsert().
		Model(&characterKinds).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed character kinds: %w", err)
	}
	kinds, _ := res.RowsAffected()

	// Explicit ids leave the serial behind.
	if _, err := db.ExecWithLog(ctx,
		"SELECT setval(pg_get_serial_sequence('character_kinds', 'id'), (SELECT MAX(id) FROM character_kinds))"); err != nil {
		return fmt.Errorf("failed to advance character kind sequence: %w", err)
	}

	res, err = db.bunDB.NewInsert().
		Model(&seedTitles).
		On("CONFLICT (key) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed titles: %w", err)
	}
	added, _ := res.RowsAffected()

	logger.LogSystem("Master data seeded",
		slog.Int64("character_kinds", kinds),
		slog.Int64("titles", added))
	return nil
}
