package models

import (
	"time"

	"github.com/uptrace/bun"
)

type CompanionState string

const (
	CompanionAlive CompanionState = "alive"
	CompanionDead  CompanionState = "dead"
)

type Companion struct {
	bun.BaseModel `bun:"table:companions,alias:c"`

	ID              int64          `bun:"id,pk,autoincrement"`
	UserID          int64          `bun:"user_id,notnull"`
	CharacterKindID int64          `bun:"character_kind_id,notnull"`
	Level           int            `bun:"level,notnull,default:1"`
	Exp             int64          `bun:"exp,notnull,default:0"`
	Bond            int            `bun:"bond,notnull,default:0"`
	BondMax         int            `bun:"bond_max,notnull,default:100"`
	State           CompanionState `bun:"state,notnull,type:text"`
	LastActivityAt  *time.Time     `bun:"last_activity_at"`
	DeadAt          *time.Time     `bun:"dead_at"`
	CreatedAt       time.Time      `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time      `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	Kind *CharacterKind `bun:"rel:belongs-to,join:character_kind_id=id"`
}

func (c *Companion) Alive() bool {
	return c != nil && c.State == CompanionAlive
}
