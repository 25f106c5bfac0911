package config

import "time"

// Application-wide constants organized by domain

// Database and Performance Constants
const (
	// Timeouts
	DefaultQueryTimeout = 30 * time.Second
	DefaultTxTimeout    = 15 * time.Second
	ConnectTimeout      = 5 * time.Second
	ShutdownTimeout     = 15 * time.Second

	// Pool and retries
	DefaultPoolSize  = 10
	MaxTxRetries     = 3
	TxRetryBaseDelay = 20 * time.Millisecond
)

// Growth Constants
const (
	DefaultBaseExp     = 50
	DefaultGrowthRate  = 1.5
	DefaultHatchLevel  = 2
	DefaultEvolveLevel = 10
	DefaultFeedAmount  = 10
	DefaultBondMax     = 100
)

// Task Constants
const (
	RewardExpEasy   = 10
	RewardExpNormal = 20
	RewardExpHard   = 40

	DefaultRewardFood = 1
	MaxTitleLength    = 255
	MaxTagLength      = 50
	MaxUnitLength     = 20
)

// Leaderboard Constants
const (
	LeaderboardTTL       = 30 * time.Minute
	RankWindow           = 1000
	LeaderboardCacheSize = 64
	DefaultTopLimit      = 100
	MaxConcurrentRefresh = 4
)

// API Constants
const (
	TokenTTL       = 24 * time.Hour
	MaxRequestSize = 64 * 1024
	DefaultPage    = 50
)
