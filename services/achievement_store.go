package services

import (
	"forkful/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AchievementStore persists earned stamps. CreateIfAbsent must be atomic:
// under concurrent evaluation for the same user, at most one row per
// (user, achievement) may exist.
type AchievementStore interface {
	// CreateIfAbsent inserts the record unless one already exists for the
	// same (user, achievement). Returns true when this call created it.
	CreateIfAbsent(ua *models.UserAchievement) (bool, error)
	ListByUser(userID uint) ([]models.UserAchievement, error)
}

type gormAchievementStore struct {
	db *gorm.DB
}

func NewAchievementStore(db *gorm.DB) AchievementStore {
	return &gormAchievementStore{db: db}
}

func (s *gormAchievementStore) CreateIfAbsent(ua *models.UserAchievement) (bool, error) {
	// ON CONFLICT DO NOTHING against the composite unique index; a lost
	// race is a silent no-op, not an error.
	res := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(ua)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormAchievementStore) ListByUser(userID uint) ([]models.UserAchievement, error) {
	var earned []models.UserAchievement
	err := s.db.
		Where("user_id = ?", userID).
		Order("earned_at ASC").
		Find(&earned).Error
	return earned, err
}
