package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Stage string

const (
	StageEgg      Stage = "egg"
	StageJuvenile Stage = "juvenile"
	StageAdult    Stage = "adult"
)

// CharacterKind is species master data. Kinds are never mutated by growth;
// evolution moves a companion to the kind whose EvolvesFromID points back.
type CharacterKind struct {
	bun.BaseModel `bun:"table:character_kinds,alias:ck"`

	ID            int64     `bun:"id,pk,autoincrement"`
	Name          string    `bun:"name,notnull"`
	Stage         Stage     `bun:"stage,notnull,type:text"`
	AssetKey      string    `bun:"asset_key,notnull"`
	EvolvesFromID *int64    `bun:"evolves_from_id"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
