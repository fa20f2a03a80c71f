package utils

import (
	"testing"
	"time"

	"forkful/models"
)

// Tuesday.
var tuesday = time.Date(2024, 6, 11, 12, 30, 0, 0, time.UTC)

func TestClassifyDishNameFallback(t *testing.T) {
	// Only a free-text name, no structured metadata at all.
	m := &models.MealEvent{DishName: "Spicy Tuna Roll", EatenAt: tuesday}
	sig := ClassifyMeal(m)

	if sig.Protein != ProteinSeafood {
		t.Errorf("protein = %q, want seafood", sig.Protein)
	}
	if !sig.IsSushi {
		t.Error("expected sushi meal")
	}
	if sig.Weekday != time.Tuesday {
		t.Errorf("weekday = %v, want Tuesday", sig.Weekday)
	}
}

func TestClassifyStructuredFieldsWin(t *testing.T) {
	m := &models.MealEvent{
		DishName:       "Salmon Salad",
		PrimaryProtein: "chicken",
		DietType:       "omnivore",
		EatenAt:        tuesday,
	}
	sig := ClassifyMeal(m)

	if sig.Protein != ProteinOther {
		t.Errorf("structured protein should win over dish name, got %q", sig.Protein)
	}
	if sig.IsVegan || sig.IsVegetarian {
		t.Error("explicit diet type should suppress keyword fallback")
	}
}

func TestClassifyDiet(t *testing.T) {
	cases := []struct {
		name       string
		meal       models.MealEvent
		vegan      bool
		vegetarian bool
	}{
		{"structured vegan", models.MealEvent{DishName: "Mystery Bowl", DietType: "Vegan"}, true, true},
		{"structured vegetarian", models.MealEvent{DishName: "Burger", DietType: "vegetarian"}, false, true},
		{"keyword vegan", models.MealEvent{DishName: "Vegan Pad Thai"}, true, true},
		{"keyword tofu", models.MealEvent{DishName: "Tofu Stir Fry"}, true, true},
		{"keyword vegetarian", models.MealEvent{DishName: "Veggie Wrap"}, false, true},
		{"no signal", models.MealEvent{DishName: "Cheeseburger"}, false, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sig := ClassifyMeal(&tc.meal)
			if sig.IsVegan != tc.vegan || sig.IsVegetarian != tc.vegetarian {
				t.Errorf("vegan=%v vegetarian=%v, want %v/%v",
					sig.IsVegan, sig.IsVegetarian, tc.vegan, tc.vegetarian)
			}
		})
	}
}

func TestClassifySetting(t *testing.T) {
	cases := []struct {
		name string
		meal models.MealEvent
		want SettingCategory
	}{
		{"structured takeout", models.MealEvent{DishName: "Noodles", Setting: "Takeout"}, SettingTakeout},
		{"structured restaurant", models.MealEvent{DishName: "Noodles", Setting: "restaurant"}, SettingDineIn},
		{"dish-name to-go", models.MealEvent{DishName: "Pad Thai to go"}, SettingTakeout},
		{"no signal", models.MealEvent{DishName: "Pad Thai"}, SettingUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if sig := ClassifyMeal(&tc.meal); sig.Setting != tc.want {
				t.Errorf("setting = %q, want %q", sig.Setting, tc.want)
			}
		})
	}
}

func TestClassifyFoodTypes(t *testing.T) {
	m := &models.MealEvent{
		DishName:  "Chef's Special",
		FoodTypes: []string{"Sushi", "unknown"},
		EatenAt:   tuesday,
	}
	sig := ClassifyMeal(m)

	if !sig.IsSushi {
		t.Error("food_types sushi entry should flag the meal")
	}
	if sig.Protein != ProteinSeafood {
		t.Errorf("protein = %q, want seafood via food types", sig.Protein)
	}
	if len(sig.FoodKeywords) != 1 || sig.FoodKeywords[0] != "sushi" {
		t.Errorf("sentinel food types should be dropped, got %v", sig.FoodKeywords)
	}
}

func TestClassifyTaco(t *testing.T) {
	if sig := ClassifyMeal(&models.MealEvent{DishName: "Birria Tacos", EatenAt: tuesday}); !sig.IsTaco {
		t.Error("expected taco meal")
	}
}

func TestClassifyCuisine(t *testing.T) {
	if sig := ClassifyMeal(&models.MealEvent{DishName: "X", CuisineType: "  Thai "}); sig.Cuisine != "thai" {
		t.Errorf("cuisine = %q, want normalized thai", sig.Cuisine)
	}
	if sig := ClassifyMeal(&models.MealEvent{DishName: "X", CuisineType: "N/A"}); sig.Cuisine != "" {
		t.Errorf("sentinel cuisine should resolve empty, got %q", sig.Cuisine)
	}
	if sig := ClassifyMeal(&models.MealEvent{DishName: "Tonkotsu Ramen"}); sig.Cuisine != "japanese" {
		t.Errorf("cuisine hint = %q, want japanese", sig.Cuisine)
	}
}

func TestCityFromMeal(t *testing.T) {
	cases := []struct {
		name string
		meal models.MealEvent
		want string
	}{
		{"explicit city", models.MealEvent{LocationCity: "Portland"}, "portland"},
		{"restaurant segment", models.MealEvent{RestaurantName: "Nong's Khao Man Gai, Portland, OR"}, "portland"},
		{"explicit wins", models.MealEvent{LocationCity: "Seattle", RestaurantName: "Somewhere, Portland"}, "seattle"},
		{"no commas", models.MealEvent{RestaurantName: "Food Cart"}, ""},
		{"sentinel city", models.MealEvent{LocationCity: "unknown"}, ""},
		{"nothing", models.MealEvent{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CityFromMeal(&tc.meal); got != tc.want {
				t.Errorf("city = %q, want %q", got, tc.want)
			}
		})
	}
}
