package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

// A dish recommendation issued to a user by the external generator. The
// engine only ever moves it active → completed; it never goes back.
type Challenge struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	DishName    string          `gorm:"not null" json:"dish_name"`
	CuisineType string          `gorm:"size:64" json:"cuisine_type"`
	Status      ChallengeStatus `gorm:"size:16;index;default:active" json:"status"`

	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CompletedMealID   *uuid.UUID `gorm:"type:uuid" json:"completed_meal_id,omitempty"`
	CompletedWithDish string     `json:"completed_with_dish,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (ch *Challenge) BeforeCreate(tx *gorm.DB) error {
	if ch.ID == uuid.Nil {
		ch.ID = uuid.New()
	}
	if ch.Status == "" {
		ch.Status = ChallengeActive
	}
	return nil
}
