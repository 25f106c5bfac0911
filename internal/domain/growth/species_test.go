package growth

import (
	"context"
	"errors"
	"testing"

	"github.com/habitpet/habitpet/internal/domain/growth/mock"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
	"go.uber.org/mock/gomock"
)

func ptr(v int64) *int64 { return &v }

var (
	eggKind    = &models.CharacterKind{ID: 1, Name: "Egg", Stage: models.StageEgg, AssetKey: "egg"}
	slimeKid   = &models.CharacterKind{ID: 2, Name: "Slimelet", Stage: models.StageJuvenile, AssetKey: "slime", EvolvesFromID: ptr(1)}
	foxKid     = &models.CharacterKind{ID: 3, Name: "Kit", Stage: models.StageJuvenile, AssetKey: "fox", EvolvesFromID: ptr(1)}
	foxAdult   = &models.CharacterKind{ID: 5, Name: "Kitsune", Stage: models.StageAdult, AssetKey: "fox", EvolvesFromID: ptr(3)}
	slimeAdult = &models.CharacterKind{ID: 4, Name: "Slime King", Stage: models.StageAdult, AssetKey: "slime", EvolvesFromID: ptr(2)}
)

func TestEvolve(t *testing.T) {
	tests := []struct {
		name    string
		current *models.CharacterKind
		target  models.Stage
		seed    int64
		setup   func(m *mock.MockSpeciesTable)
		want    int64
		wantErr error
	}{
		{
			name:    "hatch picks by seed over id order",
			current: eggKind,
			target:  models.StageJuvenile,
			seed:    5,
			setup: func(m *mock.MockSpeciesTable) {
				m.EXPECT().Successors(gomock.Any(), int64(1)).Return([]*models.CharacterKind{foxKid, slimeKid}, nil)
			},
			want: 3,
		},
		{
			name:    "egg to adult walks the lineage",
			current: eggKind,
			target:  models.StageAdult,
			seed:    4,
			setup: func(m *mock.MockSpeciesTable) {
				m.EXPECT().Successors(gomock.Any(), int64(1)).Return([]*models.CharacterKind{slimeKid, foxKid}, nil)
				m.EXPECT().Successors(gomock.Any(), int64(2)).Return([]*models.CharacterKind{slimeAdult}, nil)
			},
			want: 4,
		},
		{
			name:    "already at target",
			current: foxAdult,
			target:  models.StageAdult,
			setup:   func(m *mock.MockSpeciesTable) {},
			want:    5,
		},
		{
			name:    "missing master data",
			current: foxKid,
			target:  models.StageAdult,
			setup: func(m *mock.MockSpeciesTable) {
				m.EXPECT().Successors(gomock.Any(), int64(3)).Return(nil, nil)
			},
			wantErr: ErrNoSuccessor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := mock.NewMockSpeciesTable(gomock.NewController(t))
			tt.setup(table)

			got, err := Evolve(context.Background(), table, tt.current, tt.target, tt.seed)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Evolve() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Evolve() unexpected error = %v", err)
			}
			if got.ID != tt.want {
				t.Errorf("Evolve() = kind %d, want %d", got.ID, tt.want)
			}
		})
	}
}
