package services

import (
	"errors"
	"sync"

	"forkful/models"
	"forkful/utils"

	"gorm.io/gorm"
)

// AggregateSnapshot is the post-update view of a user's rollup, returned
// from RecordMeal so the counting rules see the triggering meal included.
type AggregateSnapshot struct {
	CityCount    int
	CuisineCount int
	SushiCount   int
	TakeoutCount int

	// Set when this meal grew the corresponding distinct set; callers can
	// use these to skip distinct-rule checks that cannot have changed.
	CityAdded    bool
	CuisineAdded bool
}

type AggregateStore interface {
	// RecordMeal folds one classified meal into the user's rollup and
	// returns the post-update snapshot.
	RecordMeal(userID uint, sig utils.MealSignals, city string) (AggregateSnapshot, error)
	Get(userID uint) (*models.UserAggregate, error)
}

type gormAggregateStore struct {
	db *gorm.DB

	// One lock per user serializes the read-modify-write below. Locks for
	// different users are independent, so user A never waits on user B.
	locks sync.Map // userID → *sync.Mutex
}

func NewAggregateStore(db *gorm.DB) AggregateStore {
	return &gormAggregateStore{db: db}
}

func (s *gormAggregateStore) userLock(userID uint) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func (s *gormAggregateStore) RecordMeal(userID uint, sig utils.MealSignals, city string) (AggregateSnapshot, error) {
	mu := s.userLock(userID)
	mu.Lock()
	defer mu.Unlock()

	var agg models.UserAggregate
	err := s.db.Where(models.UserAggregate{UserID: userID}).FirstOrCreate(&agg).Error
	if err != nil {
		return AggregateSnapshot{}, err
	}

	var snap AggregateSnapshot

	if city != "" {
		agg.Cities, snap.CityAdded = appendIfMissing(agg.Cities, city)
	}
	if sig.Cuisine != "" {
		agg.Cuisines, snap.CuisineAdded = appendIfMissing(agg.Cuisines, sig.Cuisine)
	}
	if sig.IsSushi {
		agg.SushiCount++
	}
	if sig.Setting == utils.SettingTakeout {
		agg.TakeoutCount++
	}

	if err := s.db.Save(&agg).Error; err != nil {
		return AggregateSnapshot{}, err
	}

	snap.CityCount = len(agg.Cities)
	snap.CuisineCount = len(agg.Cuisines)
	snap.SushiCount = agg.SushiCount
	snap.TakeoutCount = agg.TakeoutCount
	return snap, nil
}

func (s *gormAggregateStore) Get(userID uint) (*models.UserAggregate, error) {
	var agg models.UserAggregate
	err := s.db.Where("user_id = ?", userID).First(&agg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Lazily created on the first meal; until then, everything is zero.
		return &models.UserAggregate{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func appendIfMissing(set []string, value string) ([]string, bool) {
	for _, v := range set {
		if v == value {
			return set, false
		}
	}
	return append(set, value), true
}
