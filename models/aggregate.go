package models

import (
	"time"

	"gorm.io/datatypes"
)

// Per-user rollup read by the counting stamp rules. Created lazily on a
// user's first meal; the sets and counters only ever grow.
type UserAggregate struct {
	UserID       uint                        `gorm:"primaryKey" json:"user_id"`
	Cities       datatypes.JSONSlice[string] `json:"cities"`
	Cuisines     datatypes.JSONSlice[string] `json:"cuisines"`
	SushiCount   int                         `json:"sushi_count"`
	TakeoutCount int                         `json:"takeout_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
