package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Title struct {
	bun.BaseModel `bun:"table:titles,alias:ti"`

	ID          int64     `bun:"id,pk,autoincrement"`
	Key         string    `bun:"key,notnull,unique"`
	Name        string    `bun:"name,notnull"`
	Description string    `bun:"description"`
	RuleType    string    `bun:"rule_type,notnull"`
	Threshold   int64     `bun:"threshold,notnull"`
	Active      bool      `bun:"active,notnull"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

type UserTitle struct {
	bun.BaseModel `bun:"table:user_titles,alias:ut"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull,unique:user_title"`
	TitleID    int64     `bun:"title_id,notnull,unique:user_title"`
	UnlockedAt time.Time `bun:"unlocked_at,notnull"`

	Title *Title `bun:"rel:belongs-to,join:title_id=id"`
}
