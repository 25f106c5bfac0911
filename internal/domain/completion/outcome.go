package completion

import (
	"github.com/habitpet/habitpet/internal/domain/growth"
	"github.com/habitpet/habitpet/internal/gateways/database/models"
)

// Outcome is everything a caller needs to present one action.
type Outcome struct {
	Task      *models.Task
	Companion *models.Companion
	// Growth is nil when no alive companion was credited.
	Growth *growth.Result
	Bond   *growth.BondResult
	Entry  *models.TaskEvent

	XPAwarded   int64
	FoodAwarded int64
	FoodBalance int64

	Hatched  bool
	Evolved  bool
	Unlocked []*models.Title

	Notice  string
	Comment string
}

type Reaction string

const (
	ReactionLevelUp       Reaction = "level_up"
	ReactionFeed          Reaction = "feed"
	ReactionTaskCompleted Reaction = "task_completed"
	ReactionTaskLogged    Reaction = "task_logged"
)

type trigger struct {
	leveledUp bool
	feed      bool
	completed bool
	logged    bool
}

// reaction picks the highest priority event that applies.
func (t trigger) reaction() (Reaction, bool) {
	switch {
	case t.leveledUp:
		return ReactionLevelUp, true
	case t.feed:
		return ReactionFeed, true
	case t.completed:
		return ReactionTaskCompleted, true
	case t.logged:
		return ReactionTaskLogged, true
	default:
		return "", false
	}
}

// Commenter turns a reaction into a line the companion says.
type Commenter interface {
	Comment(reaction Reaction, seed int64) string
}

// CommentTable picks a line per reaction by seed.
type CommentTable map[Reaction][]string

func (t CommentTable) Comment(reaction Reaction, seed int64) string {
	lines := t[reaction]
	if len(lines) == 0 {
		return ""
	}
	if seed < 0 {
		seed = -seed
	}
	return lines[seed%int64(len(lines))]
}

var DefaultComments = CommentTable{
	ReactionLevelUp: {
		"I feel stronger already!",
		"Level up! Let's keep going.",
		"Look at me grow!",
	},
	ReactionFeed: {
		"Yum! Thank you!",
		"That hit the spot.",
		"More, please!",
	},
	ReactionTaskCompleted: {
		"Nice work finishing that!",
		"One less thing to worry about.",
		"You did it!",
	},
	ReactionTaskLogged: {
		"Every bit counts.",
		"Progress noted!",
		"Keep it up!",
	},
}
