// services/meal_service.go
package services

import (
	"time"

	"forkful/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// LogMealRequest mirrors what the app sends: a dish name plus whatever
// the enrichment pipeline managed to fill in.
type LogMealRequest struct {
	DishName       string    `json:"dish_name"`
	RestaurantName string    `json:"restaurant_name"`
	LocationCity   string    `json:"location_city"`
	EatenAt        time.Time `json:"eaten_at"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	CuisineType    string    `json:"cuisine_type"`
	PrimaryProtein string    `json:"primary_protein"`
	DietType       string    `json:"diet_type"`
	Setting        string    `json:"setting"`
	FoodTypes      []string  `json:"food_types"`
}

func (s *MealService) LogMeal(userID uint, req LogMealRequest) (*models.MealEvent, error) {
	meal := &models.MealEvent{
		UserID:         userID,
		EatenAt:        req.EatenAt,
		DishName:       req.DishName,
		RestaurantName: req.RestaurantName,
		LocationCity:   req.LocationCity,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		CuisineType:    req.CuisineType,
		PrimaryProtein: req.PrimaryProtein,
		DietType:       req.DietType,
		Setting:        req.Setting,
		FoodTypes:      datatypes.NewJSONSlice(req.FoodTypes),
	}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}
	return meal, nil
}

// CountPriorMeals implements the evaluator's MealStore: meals recorded
// for the user before this event, the current one excluded.
func (s *MealService) CountPriorMeals(userID uint, exclude uuid.UUID) (int64, error) {
	var n int64
	err := s.db.Model(&models.MealEvent{}).
		Where("user_id = ? AND id <> ?", userID, exclude).
		Count(&n).Error
	return n, err
}

func (s *MealService) ListMeals(userID uint) ([]models.MealEvent, error) {
	var meals []models.MealEvent
	err := s.db.
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Find(&meals).Error
	return meals, err
}

func (s *MealService) ListRecentMeals(userID uint, limit int) ([]models.MealEvent, error) {
	if limit <= 0 {
		limit = 3
	}
	var meals []models.MealEvent
	err := s.db.
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

func (s *MealService) GetMeal(userID uint, mealID uuid.UUID) (*models.MealEvent, error) {
	var meal models.MealEvent
	err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &meal, nil
}

func (s *MealService) DeleteMeal(userID uint, mealID uuid.UUID) error {
	return s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.MealEvent{}).Error
}
