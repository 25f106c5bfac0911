package tasks

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

var Units = []string{"times", "km", "minutes", "hours", "steps", "pages", "kcal", "words", "sets", "kg"}

var Periods = []string{"daily", "weekly", "monthly"}

// RewardExp maps difficulty to the exp a completion or log grants.
func RewardExp(d models.Difficulty) int64 {
	switch d {
	case models.DifficultyEasy:
		return config.RewardExpEasy
	case models.DifficultyHard:
		return config.RewardExpHard
	default:
		return config.RewardExpNormal
	}
}

// RewardFood is the food a single completion grants, never negative.
func RewardFood(task *models.Task) int64 {
	return max(task.RewardFoodCount, 0)
}

func ValidDifficulty(d models.Difficulty) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyNormal, models.DifficultyHard:
		return true
	}
	return false
}

func ValidUnit(unit string) bool {
	return slices.Contains(Units, unit)
}

func ValidPeriod(period string) bool {
	return slices.Contains(Periods, period)
}

// LogUnit picks the unit recorded for a log. Blank or oversized input falls
// back to the task's own target unit.
func LogUnit(task *models.Task, unit string) string {
	unit = strings.TrimSpace(unit)
	if unit == "" || utf8.RuneCountInString(unit) > config.MaxUnitLength {
		return task.TargetUnit
	}
	return unit
}
