package growth

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

//go:generate mockgen -source=species.go -destination=mock/species.go -package=mock

// ErrNoSuccessor means the master data has no kind to evolve into.
var ErrNoSuccessor = errors.New("no successor kind in master data")

// SpeciesTable is the species lineage master data.
type SpeciesTable interface {
	// Successors returns the kinds that evolve directly from kindID.
	Successors(ctx context.Context, kindID int64) ([]*models.CharacterKind, error)
}

// Evolve walks the lineage from current until it reaches target. Among
// several successors the pick is stable for a given seed (the companion id).
// A kind already at or past target is returned as is.
func Evolve(ctx context.Context, table SpeciesTable, current *models.CharacterKind, target models.Stage, seed int64) (*models.CharacterKind, error) {
	if current == nil {
		return nil, fmt.Errorf("evolve: current kind is nil")
	}

	kind := current
	for stageRank(kind.Stage) < stageRank(target) {
		candidates, err := table.Successors(ctx, kind.ID)
		if err != nil {
			return nil, fmt.Errorf("evolve from kind %d: %w", kind.ID, err)
		}
		if len(candidates) == 0 {
			return nil, fmt.Errorf("evolve from kind %d to %s: %w", kind.ID, target, ErrNoSuccessor)
		}

		sorted := append([]*models.CharacterKind(nil), candidates...)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
		if seed < 0 {
			seed = -seed
		}
		next := sorted[seed%int64(len(sorted))]

		if stageRank(next.Stage) <= stageRank(kind.Stage) || stageRank(next.Stage) > stageRank(target) {
			return nil, fmt.Errorf("evolve from kind %d: successor %d has stage %s", kind.ID, next.ID, next.Stage)
		}
		kind = next
	}
	return kind, nil
}

func stageRank(stage models.Stage) int {
	switch stage {
	case models.StageEgg:
		return 0
	case models.StageJuvenile:
		return 1
	case models.StageAdult:
		return 2
	default:
		return -1
	}
}
