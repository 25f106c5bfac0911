package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment override, e.g. HABITPET_DB_HOST.
const EnvPrefix = "HABITPET_"

// LoadConfig reads the TOML file at path, overlays the environment and
// applies defaults. A missing .env file is not an error.
func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParseEnv overlays HABITPET_* environment variables onto cfg. Unset
// variables leave the current value alone.
func ParseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

type Config struct {
	Log         LogConfig         `toml:"log" envPrefix:"LOG_"`
	DB          DBConfig          `toml:"db" envPrefix:"DB_"`
	Web         WebConfig         `toml:"web" envPrefix:"WEB_"`
	Growth      GrowthConfig      `toml:"growth" envPrefix:"GROWTH_"`
	Leaderboard LeaderboardConfig `toml:"leaderboard" envPrefix:"LEADERBOARD_"`
	Redis       RedisConfig       `toml:"redis" envPrefix:"REDIS_"`
}

type LogConfig struct {
	Level     slog.Level `toml:"level" env:"LEVEL"`
	Format    string     `toml:"format" env:"FORMAT"`
	AddSource bool       `toml:"add_source" env:"ADD_SOURCE"`
}

type DBConfig struct {
	Host         string `toml:"host" env:"HOST"`
	Port         int    `toml:"port" env:"PORT"`
	User         string `toml:"user" env:"USER"`
	Password     string `toml:"password" env:"PASSWORD"`
	Database     string `toml:"database" env:"DATABASE"`
	PoolSize     int    `toml:"pool_size" env:"POOL_SIZE"`
	MaxIdleConns int    `toml:"max_idle_conns" env:"MAX_IDLE_CONNS"`
	MaxLifetime  int    `toml:"max_lifetime" env:"MAX_LIFETIME"`
	Isolation    string `toml:"isolation" env:"ISOLATION"`
	MaxRetries   int    `toml:"max_retries" env:"MAX_RETRIES"`
	SSLMode      string `toml:"sslmode" env:"SSLMODE"`
}

type WebConfig struct {
	Host           string `toml:"host" env:"HOST"`
	Port           int    `toml:"port" env:"PORT"`
	JWTSecret      string `toml:"jwt_secret" env:"JWT_SECRET"`
	AllowedOrigins string `toml:"allowed_origins" env:"ALLOWED_ORIGINS"`
	RateLimit      int    `toml:"rate_limit" env:"RATE_LIMIT"`
}

type GrowthConfig struct {
	BaseExp     int64   `toml:"base_exp" env:"BASE_EXP"`
	GrowthRate  float64 `toml:"growth_rate" env:"GROWTH_RATE"`
	HatchLevel  int     `toml:"hatch_level" env:"HATCH_LEVEL"`
	EvolveLevel int     `toml:"evolve_level" env:"EVOLVE_LEVEL"`
	FeedAmount  int     `toml:"feed_amount" env:"FEED_AMOUNT"`
	BondMax     int     `toml:"bond_max" env:"BOND_MAX"`
}

type LeaderboardConfig struct {
	TTL             Duration `toml:"ttl" env:"TTL"`
	RankWindow      int      `toml:"rank_window" env:"RANK_WINDOW"`
	CacheSize       int      `toml:"cache_size" env:"CACHE_SIZE"`
	RefreshInterval Duration `toml:"refresh_interval" env:"REFRESH_INTERVAL"`
	WarmLimits      []int    `toml:"warm_limits" env:"WARM_LIMITS" envSeparator:","`
	Store           string   `toml:"store" env:"STORE"`
}

type RedisConfig struct {
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
}

// Duration decodes Go duration strings ("30m") from TOML and env.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

func (c *Config) applyDefaults() {
	if c.Log.Format == "" {
		c.Log.Format = "pretty"
	}
	if c.DB.Port == 0 {
		c.DB.Port = 5432
	}
	if c.DB.PoolSize == 0 {
		c.DB.PoolSize = DefaultPoolSize
	}
	if c.DB.Isolation == "" {
		c.DB.Isolation = "serializable"
	}
	if c.DB.SSLMode == "" {
		c.DB.SSLMode = "disable"
	}
	if c.DB.MaxRetries == 0 {
		c.DB.MaxRetries = MaxTxRetries
	}
	if c.Web.Host == "" {
		c.Web.Host = "0.0.0.0"
	}
	if c.Web.Port == 0 {
		c.Web.Port = 8080
	}

	if c.Growth.BaseExp == 0 {
		c.Growth.BaseExp = DefaultBaseExp
	}
	if c.Growth.GrowthRate == 0 {
		c.Growth.GrowthRate = DefaultGrowthRate
	}
	if c.Growth.HatchLevel == 0 {
		c.Growth.HatchLevel = DefaultHatchLevel
	}
	if c.Growth.EvolveLevel == 0 {
		c.Growth.EvolveLevel = DefaultEvolveLevel
	}
	if c.Growth.FeedAmount == 0 {
		c.Growth.FeedAmount = DefaultFeedAmount
	}
	if c.Growth.BondMax == 0 {
		c.Growth.BondMax = DefaultBondMax
	}

	if c.Leaderboard.TTL.Duration == 0 {
		c.Leaderboard.TTL.Duration = LeaderboardTTL
	}
	if c.Leaderboard.RankWindow == 0 {
		c.Leaderboard.RankWindow = RankWindow
	}
	if c.Leaderboard.CacheSize == 0 {
		c.Leaderboard.CacheSize = LeaderboardCacheSize
	}
	if c.Leaderboard.Store == "" {
		c.Leaderboard.Store = "memory"
	}
}

// Validate rejects combinations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Growth.BaseExp <= 0 {
		errs = append(errs, errors.New("growth.base_exp must be positive"))
	}
	if c.Growth.GrowthRate <= 1 {
		errs = append(errs, errors.New("growth.growth_rate must be greater than 1"))
	}
	if c.Growth.HatchLevel < 2 || c.Growth.EvolveLevel <= c.Growth.HatchLevel {
		errs = append(errs, errors.New("growth levels must satisfy 2 <= hatch_level < evolve_level"))
	}
	if c.Growth.FeedAmount <= 0 || c.Growth.BondMax <= 0 {
		errs = append(errs, errors.New("growth.feed_amount and growth.bond_max must be positive"))
	}
	switch c.DB.Isolation {
	case "serializable", "repeatable_read", "read_committed":
	default:
		errs = append(errs, fmt.Errorf("db.isolation %q is not supported", c.DB.Isolation))
	}
	switch c.Leaderboard.Store {
	case "memory":
	case "redis":
		if c.Redis.Addr == "" {
			errs = append(errs, errors.New("redis.addr is required when leaderboard.store is redis"))
		}
	default:
		errs = append(errs, fmt.Errorf("leaderboard.store %q is not supported", c.Leaderboard.Store))
	}
	for _, limit := range c.Leaderboard.WarmLimits {
		if limit <= 0 || limit > c.Leaderboard.RankWindow {
			errs = append(errs, fmt.Errorf("leaderboard.warm_limits entry %d is outside 1..%d", limit, c.Leaderboard.RankWindow))
		}
	}
	return errors.Join(errs...)
}
