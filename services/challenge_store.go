package services

import (
	"time"

	"forkful/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeStore interface {
	// ListActive returns the user's open challenges in creation order —
	// stable across one evaluation pass.
	ListActive(userID uint) ([]models.Challenge, error)
	// MarkCompleted flips an active challenge to completed with the
	// triggering meal recorded. A challenge that is already completed is
	// left untouched.
	MarkCompleted(id uuid.UUID, mealID uuid.UUID, dishName string, at time.Time) error
}

type gormChallengeStore struct {
	db *gorm.DB
}

func NewChallengeStore(db *gorm.DB) ChallengeStore {
	return &gormChallengeStore{db: db}
}

func (s *gormChallengeStore) ListActive(userID uint) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := s.db.
		Where("user_id = ? AND status = ?", userID, models.ChallengeActive).
		Order("created_at ASC").
		Find(&challenges).Error
	return challenges, err
}

func (s *gormChallengeStore) MarkCompleted(id uuid.UUID, mealID uuid.UUID, dishName string, at time.Time) error {
	// Guarding on status=active keeps the transition one-way: a completed
	// challenge never reverts and never gets a second completion.
	return s.db.Model(&models.Challenge{}).
		Where("id = ? AND status = ?", id, models.ChallengeActive).
		Updates(map[string]any{
			"status":              models.ChallengeCompleted,
			"completed_at":        at,
			"completed_meal_id":   mealID,
			"completed_with_dish": dishName,
		}).Error
}
