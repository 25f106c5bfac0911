package growth

import (
	"math"
)

type Calculator struct {
	config *Config
}

func NewCalculator(config *Config) *Calculator {
	return &Calculator{config: config}
}

// Threshold is the exp needed to go from level to level+1:
// floor(base * rate^(level-1)), but never less than base + level - 1.
// The floor alone stalls for rates close to 1 while the per-level gain is
// under one point; the linear bound keeps the curve strictly increasing
// until it saturates at math.MaxInt64.
func (c *Calculator) Threshold(level int) int64 {
	if level < 1 {
		level = 1
	}
	required := float64(c.config.BaseExp) * math.Pow(c.config.GrowthRate, float64(level-1))
	if required >= math.MaxInt64 {
		return math.MaxInt64
	}
	return max(int64(required), c.config.BaseExp+int64(level-1))
}

// TotalExpFor is the cumulative exp from a fresh level 1 companion to level.
func (c *Calculator) TotalExpFor(level int) int64 {
	var total int64
	for l := 1; l < level; l++ {
		next := c.Threshold(l)
		if total > math.MaxInt64-next {
			return math.MaxInt64
		}
		total += next
	}
	return total
}
