package titles

import (
	"context"
	"reflect"
	"testing"
	"time"

	ledgermock "github.com/habitpet/habitpet/internal/domain/ledger/mock"
	"github.com/habitpet/habitpet/internal/domain/titles/mock"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

var (
	now = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

	firstStep = &models.Title{ID: 1, Key: "first_step", RuleType: RuleTotalCompletions, Threshold: 1, Active: true}
	tenDone   = &models.Title{ID: 2, Key: "ten_done", RuleType: RuleTotalCompletions, Threshold: 10, Active: true}
	grown     = &models.Title{ID: 3, Key: "grown", RuleType: RuleCompanionLevel, Threshold: 2, Active: true}
	mystery   = &models.Title{ID: 4, Key: "mystery", RuleType: "moon_phase", Threshold: 0, Active: true}
)

func TestEvaluator_Evaluate(t *testing.T) {
	state := State{UserID: 5, Companion: &models.Companion{ID: 8, Level: 2}, Now: now}

	tests := []struct {
		name  string
		setup func(repo *mock.MockRepository, events *ledgermock.MockRepository)
		want  []*models.Title
	}{
		{
			name: "unlocks satisfied rules in id order",
			setup: func(repo *mock.MockRepository, events *ledgermock.MockRepository) {
				repo.EXPECT().ListActive(gomock.Any()).Return([]*models.Title{grown, tenDone, firstStep, mystery}, nil)
				repo.EXPECT().UnlockedIDs(gomock.Any(), int64(5)).Return(map[int64]bool{}, nil)
				events.EXPECT().CountByAction(gomock.Any(), int64(5), models.ActionCompleted).Return(int64(1), nil).Times(1)
				repo.EXPECT().Unlock(gomock.Any(), &models.UserTitle{UserID: 5, TitleID: 1, UnlockedAt: now}).Return(true, nil)
				repo.EXPECT().Unlock(gomock.Any(), &models.UserTitle{UserID: 5, TitleID: 3, UnlockedAt: now}).Return(true, nil)
			},
			want: []*models.Title{firstStep, grown},
		},
		{
			name: "already owned titles are skipped",
			setup: func(repo *mock.MockRepository, events *ledgermock.MockRepository) {
				repo.EXPECT().ListActive(gomock.Any()).Return([]*models.Title{firstStep, grown}, nil)
				repo.EXPECT().UnlockedIDs(gomock.Any(), int64(5)).Return(map[int64]bool{1: true, 3: true}, nil)
			},
			want: nil,
		},
		{
			name: "lost insert race is not reported",
			setup: func(repo *mock.MockRepository, events *ledgermock.MockRepository) {
				repo.EXPECT().ListActive(gomock.Any()).Return([]*models.Title{grown}, nil)
				repo.EXPECT().UnlockedIDs(gomock.Any(), int64(5)).Return(map[int64]bool{}, nil)
				repo.EXPECT().Unlock(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockRepository(ctrl)
			events := ledgermock.NewMockRepository(ctrl)
			tt.setup(repo, events)

			got, err := NewEvaluator().Evaluate(context.Background(), repo, events, state)
			if err != nil {
				t.Fatalf("Evaluate() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvaluator_EvaluateTwiceIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	events := ledgermock.NewMockRepository(ctrl)

	owned := map[int64]bool{}
	repo.EXPECT().ListActive(gomock.Any()).Return([]*models.Title{firstStep}, nil).Times(2)
	repo.EXPECT().UnlockedIDs(gomock.Any(), int64(5)).DoAndReturn(func(context.Context, int64) (map[int64]bool, error) {
		copied := make(map[int64]bool, len(owned))
		for k, v := range owned {
			copied[k] = v
		}
		return copied, nil
	}).Times(2)
	events.EXPECT().CountByAction(gomock.Any(), int64(5), models.ActionCompleted).Return(int64(3), nil).Times(1)
	repo.EXPECT().Unlock(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ut *models.UserTitle) (bool, error) {
		owned[ut.TitleID] = true
		return true, nil
	}).Times(1)

	e := NewEvaluator()
	state := State{UserID: 5, Now: now}
	first, err := e.Evaluate(context.Background(), repo, events, state)
	if err != nil || len(first) != 1 {
		t.Fatalf("first Evaluate() = %v, %v", first, err)
	}
	second, err := e.Evaluate(context.Background(), repo, events, state)
	if err != nil || len(second) != 0 {
		t.Fatalf("second Evaluate() = %v, %v", second, err)
	}
}

func TestStreak(t *testing.T) {
	day := func(offset int) time.Time { return now.AddDate(0, 0, -offset).Truncate(24 * time.Hour) }

	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{name: "none", want: 0},
		{name: "today only", days: []time.Time{day(0)}, want: 1},
		{name: "three in a row", days: []time.Time{day(0), day(1), day(2), day(4)}, want: 3},
		{name: "yesterday does not count without today", days: []time.Time{day(1), day(2)}, want: 0},
		{name: "duplicates and order", days: []time.Time{day(1), day(0), day(1)}, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Streak(tt.days, now); got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}
