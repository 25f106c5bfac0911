package cmd

import (
	"context"
	"fmt"

	"github.com/habitpet/habitpet/internal/config"
	"github.com/habitpet/habitpet/internal/domain/completion"
	"github.com/habitpet/habitpet/internal/domain/growth"
	"github.com/habitpet/habitpet/internal/domain/leaderboard"
	"github.com/habitpet/habitpet/internal/domain/lifecycle"
	"github.com/habitpet/habitpet/internal/domain/titles"
	"github.com/habitpet/habitpet/internal/gateways/cache"
	"github.com/habitpet/habitpet/internal/gateways/database"
	"github.com/habitpet/habitpet/internal/gateways/database/repositories"
	"github.com/habitpet/habitpet/internal/logger"
	"github.com/redis/go-redis/v9"
)

// services is everything a command may need, wired from cfg.
type services struct {
	db          *database.DB
	redis       *redis.Client
	rewards     *completion.Service
	lifecycle   *lifecycle.Service
	leaderboard *leaderboard.Cache
}

func buildServices(ctx context.Context, cfg *config.Config) (*services, error) {
	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}

	uow := database.NewUnitOfWork(db.BunDB(), cfg.DB)
	engine := growth.NewEngine(growth.ConfigFrom(cfg.Growth))

	s := &services{
		db:        db,
		rewards:   completion.NewService(uow, engine, titles.NewEvaluator()),
		lifecycle: lifecycle.NewService(uow, engine),
	}

	var store leaderboard.SnapshotStore
	switch cfg.Leaderboard.Store {
	case "redis":
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := s.redis.Ping(ctx).Err(); err != nil {
			s.close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		store = cache.NewLeaderboardStore(s.redis, cfg.Leaderboard.TTL.Duration)
	default:
		mem, err := leaderboard.NewMemoryStore(cfg.Leaderboard.CacheSize)
		if err != nil {
			s.close()
			return nil, err
		}
		store = mem
	}

	s.leaderboard = leaderboard.NewCache(
		repositories.NewLeaderboardRepository(db.BunDB()),
		store,
		leaderboard.WithTTL(cfg.Leaderboard.TTL.Duration),
		leaderboard.WithRankWindow(cfg.Leaderboard.RankWindow),
	)
	return s, nil
}

func (s *services) close() {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			logger.LogError("Failed to close redis client", err)
		}
	}
	s.db.Close()
}
