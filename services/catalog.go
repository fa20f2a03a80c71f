package services

import "time"

// RuleKind tags how an achievement definition is evaluated. Each stamp in
// the catalog carries exactly the parameter struct its kind needs; the
// evaluator dispatches on the kind in a single switch.
type RuleKind string

const (
	RuleFirstPost       RuleKind = "first_post"
	RuleGeofence        RuleKind = "geofence"
	RuleContentMatch    RuleKind = "content_match"
	RuleGeofenceContent RuleKind = "compound_geofence_content"
	RuleContentWeekday  RuleKind = "content_and_weekday"
	RuleThresholdCount  RuleKind = "threshold_count"
	RuleDistinctCount   RuleKind = "distinct_count"
)

// ContentPredicate names a classifier signal a content rule checks.
type ContentPredicate string

const (
	ContentSeafood    ContentPredicate = "seafood"
	ContentVegan      ContentPredicate = "vegan"
	ContentVegetarian ContentPredicate = "vegetarian"
	ContentSushi      ContentPredicate = "sushi"
	ContentTaco       ContentPredicate = "taco"
	ContentTakeout    ContentPredicate = "takeout"
)

// CounterKind selects a UserAggregate counter for threshold rules.
type CounterKind string

const (
	CounterSushi   CounterKind = "sushi"
	CounterTakeout CounterKind = "takeout"
)

// DistinctKind selects a UserAggregate distinct set for distinct rules.
type DistinctKind string

const (
	DistinctCities   DistinctKind = "cities"
	DistinctCuisines DistinctKind = "cuisines"
)

type GeofenceParams struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	RadiusKm float64 `json:"radius_km"`
}

type AchievementDefinition struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Kind        RuleKind `json:"kind"`

	// Exactly the fields the Kind needs are set; the rest stay zero.
	Geofence  *GeofenceParams  `json:"geofence,omitempty"`
	Content   ContentPredicate `json:"content,omitempty"`
	Weekday   *time.Weekday    `json:"weekday,omitempty"`
	Counter   CounterKind      `json:"counter,omitempty"`
	Distinct  DistinctKind     `json:"distinct,omitempty"`
	Threshold int              `json:"threshold,omitempty"`
}

var portland = GeofenceParams{Name: "Portland", Lat: 45.5051, Lng: -122.6750, RadiusKm: 15}

func weekdayPtr(d time.Weekday) *time.Weekday { return &d }

// stampCatalog is the full set of stamps the evaluator runs on every meal.
// It is loaded once and never mutated after init.
var stampCatalog = []AchievementDefinition{
	{
		ID:          "first_bite",
		Name:        "First Bite",
		Description: "Log your very first meal.",
		Kind:        RuleFirstPost,
	},
	{
		ID:          "rose_city_bite",
		Name:        "Rose City Bite",
		Description: "Eat a meal in Portland.",
		Kind:        RuleGeofence,
		Geofence:    &portland,
	},
	{
		ID:          "something_fishy",
		Name:        "Something Fishy",
		Description: "Log a seafood meal.",
		Kind:        RuleContentMatch,
		Content:     ContentSeafood,
	},
	{
		ID:          "plant_based_bite",
		Name:        "Plant-Based Bite",
		Description: "Log a vegan meal.",
		Kind:        RuleContentMatch,
		Content:     ContentVegan,
	},
	{
		ID:          "plantlandia",
		Name:        "Plantlandia",
		Description: "Eat vegan in Portland.",
		Kind:        RuleGeofenceContent,
		Geofence:    &portland,
		Content:     ContentVegan,
	},
	{
		ID:          "taco_tuesday",
		Name:        "Taco Tuesday",
		Description: "Eat a taco on a Tuesday.",
		Kind:        RuleContentWeekday,
		Content:     ContentTaco,
		Weekday:     weekdayPtr(time.Tuesday),
	},
	{
		ID:          "dreaming_of_sushi",
		Name:        "Dreaming of Sushi",
		Description: "Log 5 sushi meals.",
		Kind:        RuleThresholdCount,
		Counter:     CounterSushi,
		Threshold:   5,
	},
	{
		ID:          "takeout_ten",
		Name:        "Takeout Ten",
		Description: "Log 10 takeout meals.",
		Kind:        RuleThresholdCount,
		Counter:     CounterTakeout,
		Threshold:   10,
	},
	{
		ID:          "urban_forager",
		Name:        "Urban Forager",
		Description: "Eat in 10 different cities.",
		Kind:        RuleDistinctCount,
		Distinct:    DistinctCities,
		Threshold:   10,
	},
	{
		ID:          "world_on_a_plate",
		Name:        "World on a Plate",
		Description: "Try 10 different cuisines.",
		Kind:        RuleDistinctCount,
		Distinct:    DistinctCuisines,
		Threshold:   10,
	},
}

// Catalog returns the stamp definitions. Callers must treat the slice as
// read-only.
func Catalog() []AchievementDefinition {
	return stampCatalog
}
