package growth

import (
	"github.com/habitpet/habitpet/internal/config"
)

type Config struct {
	// Exp needed to leave level 1; later levels scale by GrowthRate.
	BaseExp    int64
	GrowthRate float64

	// Stage boundaries
	HatchLevel  int
	EvolveLevel int

	// Bond meter
	FeedAmount int
	BondMax    int
}

func NewDefaultConfig() *Config {
	return &Config{
		BaseExp:     config.DefaultBaseExp,
		GrowthRate:  config.DefaultGrowthRate,
		HatchLevel:  config.DefaultHatchLevel,
		EvolveLevel: config.DefaultEvolveLevel,
		FeedAmount:  config.DefaultFeedAmount,
		BondMax:     config.DefaultBondMax,
	}
}

func ConfigFrom(cfg config.GrowthConfig) *Config {
	return &Config{
		BaseExp:     cfg.BaseExp,
		GrowthRate:  cfg.GrowthRate,
		HatchLevel:  cfg.HatchLevel,
		EvolveLevel: cfg.EvolveLevel,
		FeedAmount:  cfg.FeedAmount,
		BondMax:     cfg.BondMax,
	}
}
