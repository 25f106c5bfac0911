package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID                int64     `bun:"id,pk,autoincrement"`
	Name              string    `bun:"name,notnull"`
	Email             string    `bun:"email,notnull,unique"`
	FoodCount         int64     `bun:"food_count,notnull,default:0"`
	ActiveCompanionID *int64    `bun:"active_companion_id"`
	CreatedAt         time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	ActiveCompanion *Companion `bun:"rel:belongs-to,join:active_companion_id=id"`
}
