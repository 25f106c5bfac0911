package growth

import (
	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

// Engine holds the pure growth rules. It never touches storage.
type Engine struct {
	config     *Config
	calculator *Calculator
}

func NewEngine(config *Config) *Engine {
	return &Engine{
		config:     config,
		calculator: NewCalculator(config),
	}
}

func (e *Engine) Config() *Config {
	return e.config
}

func (e *Engine) Threshold(level int) int64 {
	return e.calculator.Threshold(level)
}

func (e *Engine) StageFor(level int) models.Stage {
	switch {
	case level >= e.config.EvolveLevel:
		return models.StageAdult
	case level >= e.config.HatchLevel:
		return models.StageJuvenile
	default:
		return models.StageEgg
	}
}

// Award adds delta exp and levels up while the threshold is met, carrying
// leftover exp. Negative deltas are treated as zero.
func (e *Engine) Award(level int, exp, delta int64) Result {
	if level < 1 {
		level = 1
	}
	if exp < 0 {
		exp = 0
	}
	if delta < 0 {
		delta = 0
	}

	result := Result{
		LevelBefore: level,
		ExpBefore:   exp,
		ExpDelta:    delta,
		StageBefore: e.StageFor(level),
	}

	exp += delta
	for {
		required := e.calculator.Threshold(level)
		if exp < required {
			break
		}
		exp -= required
		level++
	}

	result.Level = level
	result.Exp = exp
	result.RequiredExp = e.calculator.Threshold(level)
	result.Stage = e.StageFor(level)
	result.Hatched = result.LevelBefore < e.config.HatchLevel && level >= e.config.HatchLevel
	result.Evolved = result.LevelBefore < e.config.EvolveLevel && level >= e.config.EvolveLevel
	return result
}

// Decrease removes delta exp for an undo. Level never goes down; exp is
// floored at zero instead of borrowing from earlier levels.
func (e *Engine) Decrease(level int, exp, delta int64) Result {
	if level < 1 {
		level = 1
	}
	if delta < 0 {
		delta = 0
	}

	next := exp - delta
	if next < 0 {
		next = 0
	}
	return Result{
		LevelBefore: level,
		Level:       level,
		ExpBefore:   exp,
		Exp:         next,
		ExpDelta:    next - exp,
		RequiredExp: e.calculator.Threshold(level),
		StageBefore: e.StageFor(level),
		Stage:       e.StageFor(level),
	}
}

// Feed spends one food to raise bond by FeedAmount, clamped to bondMax.
// A full bond is reported before an empty pantry.
func (e *Engine) Feed(bond, bondMax int, food int64) (BondResult, error) {
	if bondMax <= 0 {
		bondMax = e.config.BondMax
	}
	if bond >= bondMax {
		return BondResult{}, apperr.New(apperr.CodeLimitReached, "bond is already at max")
	}
	if food < 1 {
		return BondResult{}, apperr.New(apperr.CodeInsufficientResource, "no food left")
	}

	next := bond + e.config.FeedAmount
	if next > bondMax {
		next = bondMax
	}
	return BondResult{
		BondBefore: bond,
		Bond:       next,
		BondMax:    bondMax,
		FoodBefore: food,
		Food:       food - 1,
	}, nil
}
