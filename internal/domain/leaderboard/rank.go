// Package leaderboard ranks users by their active companion and serves the
// ranking from a time-bounded snapshot.
package leaderboard

import (
	"sort"
	"time"

	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

// Entry is one user's standing, taken from their active companion.
type Entry struct {
	UserID      int64        `json:"user_id"`
	UserName    string       `json:"user_name"`
	CompanionID int64        `json:"companion_id"`
	KindName    string       `json:"kind_name"`
	AssetKey    string       `json:"asset_key"`
	Stage       models.Stage `json:"stage"`
	Level       int          `json:"level"`
	Exp         int64        `json:"exp"`
	Alive       bool         `json:"alive"`
}

// Rank drops entries whose companion is not alive and orders the rest by
// level then exp, both descending. Equal entries keep their input order;
// there is no further tie-break.
func Rank(entries []Entry) []Entry {
	ranked := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Alive {
			ranked = append(ranked, e)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Level != ranked[j].Level {
			return ranked[i].Level > ranked[j].Level
		}
		return ranked[i].Exp > ranked[j].Exp
	})
	return ranked
}

// Snapshot is an immutable ranking computed at one point in time.
type Snapshot struct {
	Limit      int       `json:"limit"`
	Entries    []Entry   `json:"entries"`
	ComputedAt time.Time `json:"computed_at"`
}

// Position is the 1-based rank of userID, or 0 when absent.
func (s *Snapshot) Position(userID int64) int {
	for i, e := range s.Entries {
		if e.UserID == userID {
			return i + 1
		}
	}
	return 0
}

func (s *Snapshot) expired(now time.Time, ttl time.Duration) bool {
	return !now.Before(s.ComputedAt.Add(ttl))
}
