package models

import (
	"time"

	"github.com/google/uuid"
)

// One row per stamp a user has earned. The composite unique index is the
// real duplicate guard: the evaluator inserts with ON CONFLICT DO NOTHING,
// so two concurrent unlock attempts can never both land.
type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	UserID        uint      `gorm:"uniqueIndex:idx_user_stamp;not null" json:"user_id"`
	AchievementID string    `gorm:"uniqueIndex:idx_user_stamp;size:64;not null" json:"achievement_id"`
	EarnedAt      time.Time `gorm:"not null" json:"earned_at"`
	MealEventID   uuid.UUID `gorm:"type:uuid" json:"meal_event_id"`
}
