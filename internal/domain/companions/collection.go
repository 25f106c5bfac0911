// Package companions holds the companion and species ports plus the
// read-side helpers built on them.
package companions

import "github.com/habitpet/habitpet/internal/gateways/database/models"

// Collection keeps one companion per hatched kind, the most recent one.
// Input is expected newest first, as ListByUser returns it.
func Collection(companions []*models.Companion) []*models.Companion {
	seen := make(map[int64]bool, len(companions))
	out := make([]*models.Companion, 0, len(companions))
	for _, c := range companions {
		if c.Kind == nil || c.Kind.Stage == models.StageEgg {
			continue
		}
		if seen[c.CharacterKindID] {
			continue
		}
		seen[c.CharacterKindID] = true
		out = append(out, c)
	}
	return out
}
