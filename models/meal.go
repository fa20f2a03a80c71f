package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// One logged meal. Everything past DishName is filled in by the app's
// enrichment pipeline and may be missing; the engine has to cope with
// events that carry only a name, or nothing but a timestamp.
type MealEvent struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID  uint      `gorm:"index;not null" json:"user_id"`
	EatenAt time.Time `gorm:"index;not null" json:"eaten_at"`

	DishName       string `json:"dish_name"`
	RestaurantName string `json:"restaurant_name"` // e.g. "Nong's Khao Man Gai, Portland, OR"
	LocationCity   string `json:"location_city"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CuisineType    string                      `gorm:"size:64" json:"cuisine_type"`
	PrimaryProtein string                      `gorm:"size:64" json:"primary_protein"`
	DietType       string                      `gorm:"size:32" json:"diet_type"`
	Setting        string                      `gorm:"size:32" json:"setting"` // "takeout" | "restaurant" | "homemade"
	FoodTypes      datatypes.JSONSlice[string] `json:"food_types"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *MealEvent) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.EatenAt.IsZero() {
		m.EatenAt = time.Now()
	}
	return nil
}
