package utils

import (
	"strings"
	"time"

	"forkful/models"
)

// ProteinCategory is the coarse protein bucket a meal resolves to.
type ProteinCategory string

const (
	ProteinSeafood ProteinCategory = "seafood"
	ProteinPlant   ProteinCategory = "plant"
	ProteinOther   ProteinCategory = "other"
	ProteinUnknown ProteinCategory = "unknown"
)

type SettingCategory string

const (
	SettingTakeout SettingCategory = "takeout"
	SettingDineIn  SettingCategory = "dine-in"
	SettingUnknown SettingCategory = "unknown"
)

// MealSignals is the normalized view of one meal that the stamp rules
// evaluate against. Every field degrades to its zero/unknown value when
// the source metadata is missing — absence is never an error.
type MealSignals struct {
	Cuisine      string
	Protein      ProteinCategory
	IsVegan      bool
	IsVegetarian bool
	IsSushi      bool
	IsTaco       bool
	Setting      SettingCategory
	Weekday      time.Weekday
	FoodKeywords []string
}

// -----------------------------
// Curated keyword sets
// -----------------------------

var seafoodKeywords = []string{
	"fish", "shrimp", "prawn", "crab", "lobster", "salmon", "tuna",
	"sushi", "sashimi", "poke", "ceviche", "oyster", "clam", "mussel",
	"scallop", "squid", "calamari", "octopus", "eel", "unagi", "uni",
	"cod", "halibut", "trout", "mackerel", "snapper", "anchovy",
	"crawfish", "roe",
}

var sushiKeywords = []string{
	"sushi", "sashimi", "nigiri", "maki", "temaki", "chirashi",
	"omakase", "tuna roll", "salmon roll", "california roll",
	"spicy tuna", "hand roll",
}

var veganKeywords = []string{
	"vegan", "plant-based", "plant based", "tofu", "tempeh", "seitan",
}

var vegetarianKeywords = []string{
	"vegetarian", "veggie", "meatless", "meat-free",
}

var tacoKeywords = []string{
	"taco", "tacos", "al pastor", "birria",
}

var takeoutKeywords = []string{
	"takeout", "take-out", "take out", "to-go", "to go", "delivery",
	"drive-thru", "drive through",
}

var dineInSettings = []string{
	"restaurant", "dine-in", "dine in", "cafe", "café", "bar",
}

// Dish-name hints used only when CuisineType is absent. Checked in
// order; the first hit wins.
var cuisineHints = []struct{ hint, cuisine string }{
	{"sushi", "japanese"},
	{"ramen", "japanese"},
	{"taco", "mexican"},
	{"burrito", "mexican"},
	{"pad thai", "thai"},
	{"curry", "indian"},
	{"pho", "vietnamese"},
	{"banh mi", "vietnamese"},
	{"pizza", "italian"},
	{"pasta", "italian"},
	{"dim sum", "chinese"},
	{"bibimbap", "korean"},
	{"falafel", "middle eastern"},
	{"gyro", "greek"},
}

// Values the enrichment pipeline emits when it couldn't decide.
var sentinelValues = map[string]struct{}{
	"": {}, "unknown": {}, "n/a": {}, "na": {}, "none": {}, "null": {},
}

// NormalizeSignal lowercases and trims a metadata value, collapsing
// pipeline sentinels ("unknown", "n/a", ...) to the empty string.
func NormalizeSignal(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, bad := sentinelValues[s]; bad {
		return ""
	}
	return s
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// ClassifyMeal derives the signal bundle for one meal event. Structured
// metadata wins when present; otherwise each signal falls back to a
// case-insensitive keyword scan of the dish name.
func ClassifyMeal(m *models.MealEvent) MealSignals {
	sig := MealSignals{
		Protein: ProteinUnknown,
		Setting: SettingUnknown,
		Weekday: m.EatenAt.Weekday(),
	}

	dish := strings.ToLower(strings.TrimSpace(m.DishName))

	for _, ft := range m.FoodTypes {
		if v := NormalizeSignal(ft); v != "" {
			sig.FoodKeywords = append(sig.FoodKeywords, v)
		}
	}
	foodTypes := strings.Join(sig.FoodKeywords, " ")

	// Cuisine: structured field, then dish-name hints.
	sig.Cuisine = NormalizeSignal(m.CuisineType)
	if sig.Cuisine == "" {
		for _, h := range cuisineHints {
			if strings.Contains(dish, h.hint) {
				sig.Cuisine = h.cuisine
				break
			}
		}
	}

	// Protein: primary_protein, then food types, then dish name.
	switch protein := NormalizeSignal(m.PrimaryProtein); {
	case protein == "":
		if containsAny(foodTypes, seafoodKeywords) || containsAny(dish, seafoodKeywords) {
			sig.Protein = ProteinSeafood
		} else if containsAny(foodTypes, veganKeywords) || containsAny(dish, veganKeywords) {
			sig.Protein = ProteinPlant
		} else if foodTypes != "" || dish != "" {
			sig.Protein = ProteinOther
		}
	case containsAny(protein, seafoodKeywords) || protein == "seafood":
		sig.Protein = ProteinSeafood
	case containsAny(protein, veganKeywords) || protein == "beans" || protein == "legumes" || protein == "plant":
		sig.Protein = ProteinPlant
	default:
		sig.Protein = ProteinOther
	}

	// Diet: diet_type wins, dish-name keywords as fallback.
	diet := NormalizeSignal(m.DietType)
	switch {
	case strings.Contains(diet, "vegan"):
		sig.IsVegan = true
		sig.IsVegetarian = true
	case strings.Contains(diet, "vegetarian"):
		sig.IsVegetarian = true
	case diet == "":
		if containsAny(dish, veganKeywords) {
			sig.IsVegan = true
			sig.IsVegetarian = true
		} else if containsAny(dish, vegetarianKeywords) {
			sig.IsVegetarian = true
		}
	}

	sig.IsSushi = containsAny(foodTypes, sushiKeywords) || containsAny(dish, sushiKeywords)
	sig.IsTaco = containsAny(foodTypes, tacoKeywords) || containsAny(dish, tacoKeywords)

	// Setting: structured field, then dish-name takeout markers.
	switch setting := NormalizeSignal(m.Setting); {
	case containsAny(setting, takeoutKeywords):
		sig.Setting = SettingTakeout
	case setting != "" && containsAny(setting, dineInSettings):
		sig.Setting = SettingDineIn
	case containsAny(dish, takeoutKeywords):
		sig.Setting = SettingTakeout
	}

	return sig
}

// CityFromMeal resolves the city a meal was eaten in: the explicit city
// field when set, else the segment after the venue name in a
// comma-separated restaurant string ("Nong's Khao Man Gai, Portland, OR"
// → "portland"). Empty when neither source yields one.
func CityFromMeal(m *models.MealEvent) string {
	if city := NormalizeSignal(m.LocationCity); city != "" {
		return city
	}
	parts := strings.Split(m.RestaurantName, ",")
	if len(parts) < 2 {
		return ""
	}
	return NormalizeSignal(parts[1])
}
