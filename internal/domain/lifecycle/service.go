// Package lifecycle covers everything around the reward loop: registering
// users with their first egg, managing tasks, resetting companions and
// reading collections and titles.
package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/habitpet/habitpet/internal/apperr"
	"github.com/habitpet/habitpet/internal/domain/companions"
	"github.com/habitpet/habitpet/internal/domain/growth"
	"github.com/habitpet/habitpet/internal/domain/store"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"github.com/habitpet/habitpet/internal/logger"
)

type Service struct {
	uow    store.UnitOfWork
	engine *growth.Engine
	now    func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(uow store.UnitOfWork, engine *growth.Engine, opts ...Option) *Service {
	s := &Service{uow: uow, engine: engine, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUser creates the user and an egg companion that becomes active.
func (s *Service) RegisterUser(ctx context.Context, name, email string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, apperr.InvalidOperation("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperr.InvalidOperation("invalid email %q", email)
	}

	var user *models.User
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		now := s.now()
		u := &models.User{Name: name, Email: email, CreatedAt: now, UpdatedAt: now}
		if err := r.Users.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		egg, err := s.hatchEgg(ctx, r, u.ID, now)
		if err != nil {
			return err
		}
		u.ActiveCompanionID = &egg.ID
		u.ActiveCompanion = egg
		user = u
		return nil
	})
	if err != nil {
		return nil, s.fail("register", 0, 0, err)
	}

	logger.LogAction("register", user.ID, 0, slog.String("email", user.Email))
	return user, nil
}

// ResetCompanion starts over with a fresh egg. The previous companion is
// kept as it is.
func (s *Service) ResetCompanion(ctx context.Context, userID int64) (*models.Companion, error) {
	var egg *models.Companion
	err := s.uow.WithTransaction(ctx, func(ctx context.Context, r store.Repositories) error {
		if _, err := r.Users.GetForUpdate(ctx, userID); err != nil {
			return err
		}
		c, err := s.hatchEgg(ctx, r, userID, s.now())
		if err != nil {
			return err
		}
		egg = c
		return nil
	})
	if err != nil {
		return nil, s.fail("reset", userID, 0, err)
	}

	logger.LogAction("reset", userID, 0, slog.Int64("companion_id", egg.ID))
	return egg, nil
}

// hatchEgg creates a level 1 egg companion and makes it the active one.
func (s *Service) hatchEgg(ctx context.Context, r store.Repositories, userID int64, now time.Time) (*models.Companion, error) {
	kind, err := r.Kinds.Egg(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load egg kind: %w", err)
	}

	c := &models.Companion{
		UserID:          userID,
		CharacterKindID: kind.ID,
		Level:           1,
		BondMax:         s.engine.Config().BondMax,
		State:           models.CompanionAlive,
		LastActivityAt:  &now,
		CreatedAt:       now,
		UpdatedAt:       now,
		Kind:            kind,
	}
	if err := r.Companions.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create companion: %w", err)
	}
	if err := r.Users.SetActiveCompanion(ctx, userID, c.ID); err != nil {
		return nil, fmt.Errorf("failed to activate companion: %w", err)
	}
	return c, nil
}

func (s *Service) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.uow.Repositories().Users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.fail("get_user", userID, 0, err)
	}
	return user, nil
}

func (s *Service) ActiveCompanion(ctx context.Context, userID int64) (*models.Companion, error) {
	repos := s.uow.Repositories()
	user, err := repos.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, s.fail("companion", userID, 0, err)
	}
	if user.ActiveCompanionID == nil {
		return nil, apperr.New(apperr.CodeNotFound, "no active companion")
	}
	c, err := repos.Companions.GetByID(ctx, *user.ActiveCompanionID)
	if err != nil {
		return nil, s.fail("companion", userID, 0, err)
	}
	return c, nil
}

// Collection lists one hatched companion per kind, newest first.
func (s *Service) Collection(ctx context.Context, userID int64) ([]*models.Companion, error) {
	list, err := s.uow.Repositories().Companions.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail("collection", userID, 0, err)
	}
	return companions.Collection(list), nil
}

func (s *Service) Titles(ctx context.Context, userID int64) ([]*models.UserTitle, error) {
	list, err := s.uow.Repositories().Titles.ListByUser(ctx, userID)
	if err != nil {
		return nil, s.fail("titles", userID, 0, err)
	}
	return list, nil
}

func (s *Service) fail(action string, userID, taskID int64, err error) error {
	if apperr.Classified(err) {
		return err
	}
	logger.LogError("Lifecycle action failed", err,
		slog.String("action", action),
		slog.Int64("user_id", userID),
		slog.Int64("task_id", taskID),
	)
	return apperr.Wrap(apperr.CodeInternal, action+" failed", err)
}
