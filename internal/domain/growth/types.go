package growth

import "github.com/habitpet/habitpet/internal/gateways/database/models"

// Result describes one exp change applied to a companion.
type Result struct {
	LevelBefore int
	Level       int
	ExpBefore   int64
	Exp         int64
	ExpDelta    int64
	RequiredExp int64

	StageBefore models.Stage
	Stage       models.Stage

	// Hatched is set when the change crossed egg -> juvenile, Evolved when
	// it crossed juvenile -> adult. Both may be set by one large award.
	Hatched bool
	Evolved bool
}

func (r Result) LeveledUp() bool {
	return r.Level > r.LevelBefore
}

// Crossed lists the stages entered by this change, in order.
func (r Result) Crossed() []models.Stage {
	var stages []models.Stage
	if r.Hatched {
		stages = append(stages, models.StageJuvenile)
	}
	if r.Evolved {
		stages = append(stages, models.StageAdult)
	}
	return stages
}

type BondResult struct {
	BondBefore int
	Bond       int
	BondMax    int
	FoodBefore int64
	Food       int64
}
