package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"forkful/models"
	"forkful/utils"

	"github.com/google/uuid"
)

// MealStore is the slice of meal history the evaluator needs: enough to
// decide whether a given event is the user's first recorded meal. "First
// post" is derived from prior meal count, not from previously earned
// stamps, so a lagging unlock can never fake a first post.
type MealStore interface {
	CountPriorMeals(userID uint, exclude uuid.UUID) (int64, error)
}

// EvaluationResult is what one pass over a meal event produced.
type EvaluationResult struct {
	Unlocked           []AchievementDefinition `json:"unlocked"`
	CompletedChallenge *models.Challenge       `json:"completed_challenge"`
}

// AchievementService runs the stamp catalog against every new meal event,
// records unlocks exactly once, and advances the per-user rollup.
type AchievementService struct {
	catalog      []AchievementDefinition
	meals        MealStore
	aggregates   AggregateStore
	achievements AchievementStore
	challenges   *ChallengeService

	onUnlock    []func(userID uint, def AchievementDefinition, mealID uuid.UUID)
	onChallenge []func(userID uint, ch models.Challenge)

	// Serializes evaluation per user so counting rules see events in
	// recorded order. Users never block each other.
	userLocks sync.Map
}

func NewAchievementService(
	meals MealStore,
	aggregates AggregateStore,
	achievements AchievementStore,
	challenges *ChallengeService,
) *AchievementService {
	return &AchievementService{
		catalog:      Catalog(),
		meals:        meals,
		aggregates:   aggregates,
		achievements: achievements,
		challenges:   challenges,
	}
}

// OnAchievementUnlocked registers a fire-and-forget listener. Register
// before the first evaluation; listeners run on their own goroutine and
// are best-effort signals, never the source of truth.
func (s *AchievementService) OnAchievementUnlocked(fn func(userID uint, def AchievementDefinition, mealID uuid.UUID)) {
	s.onUnlock = append(s.onUnlock, fn)
}

func (s *AchievementService) OnChallengeCompleted(fn func(userID uint, ch models.Challenge)) {
	s.onChallenge = append(s.onChallenge, fn)
}

func (s *AchievementService) userLock(userID uint) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// EvaluateMealEvent is the single synchronous entry point: classify the
// meal, fold it into the user's rollup, run every stamp rule, then check
// open challenges. Partial internal failures never surface as an error —
// the result carries whatever subset of unlocks and completions stuck,
// and a missed unlock self-corrects on the user's next meal.
func (s *AchievementService) EvaluateMealEvent(event *models.MealEvent) EvaluationResult {
	mu := s.userLock(event.UserID)
	mu.Lock()
	defer mu.Unlock()

	sig := utils.ClassifyMeal(event)
	city := utils.CityFromMeal(event)

	snap, aggErr := s.aggregates.RecordMeal(event.UserID, sig, city)
	if aggErr != nil {
		log.Printf("user %d: aggregate update failed: %v", event.UserID, aggErr)
	}

	earned := make(map[string]bool)
	if rows, err := s.achievements.ListByUser(event.UserID); err != nil {
		// Evaluate anyway: CreateIfAbsent still guarantees no duplicates.
		log.Printf("user %d: earned-stamp lookup failed: %v", event.UserID, err)
	} else {
		for _, row := range rows {
			earned[row.AchievementID] = true
		}
	}

	var result EvaluationResult
	for _, def := range s.catalog {
		if earned[def.ID] {
			continue
		}

		ok, err := s.ruleSatisfied(def, event, sig, snap, aggErr == nil)
		if err != nil {
			// One broken rule never aborts the rest of the pass.
			log.Printf("user %d: stamp %s evaluation failed: %v", event.UserID, def.ID, err)
			continue
		}
		if !ok {
			continue
		}

		created, err := s.achievements.CreateIfAbsent(&models.UserAchievement{
			UserID:        event.UserID,
			AchievementID: def.ID,
			EarnedAt:      time.Now(),
			MealEventID:   event.ID,
		})
		if err != nil {
			log.Printf("user %d: stamp %s not persisted: %v", event.UserID, def.ID, err)
			continue
		}
		if !created {
			continue // lost a race; the other writer owns the unlock
		}

		result.Unlocked = append(result.Unlocked, def)
		s.emitUnlock(event.UserID, def, event.ID)
	}

	if s.challenges != nil {
		ch, err := s.challenges.MatchMeal(event, sig)
		if err != nil {
			log.Printf("user %d: challenge matching failed: %v", event.UserID, err)
		} else if ch != nil {
			result.CompletedChallenge = ch
			s.emitChallenge(event.UserID, *ch)
		}
	}

	return result
}

func (s *AchievementService) ruleSatisfied(
	def AchievementDefinition,
	event *models.MealEvent,
	sig utils.MealSignals,
	snap AggregateSnapshot,
	snapOK bool,
) (bool, error) {
	switch def.Kind {
	case RuleFirstPost:
		prior, err := s.meals.CountPriorMeals(event.UserID, event.ID)
		if err != nil {
			return false, err
		}
		return prior == 0, nil

	case RuleGeofence:
		return inGeofence(def.Geofence, event), nil

	case RuleContentMatch:
		return contentSatisfied(def.Content, sig), nil

	case RuleGeofenceContent:
		return inGeofence(def.Geofence, event) && contentSatisfied(def.Content, sig), nil

	case RuleContentWeekday:
		if def.Weekday == nil {
			return false, fmt.Errorf("weekday rule without weekday")
		}
		return contentSatisfied(def.Content, sig) && sig.Weekday == *def.Weekday, nil

	case RuleThresholdCount:
		if !snapOK {
			return false, fmt.Errorf("aggregate unavailable")
		}
		switch def.Counter {
		case CounterSushi:
			return snap.SushiCount >= def.Threshold, nil
		case CounterTakeout:
			return snap.TakeoutCount >= def.Threshold, nil
		}
		return false, fmt.Errorf("unknown counter %q", def.Counter)

	case RuleDistinctCount:
		if !snapOK {
			return false, fmt.Errorf("aggregate unavailable")
		}
		switch def.Distinct {
		case DistinctCities:
			return snap.CityCount >= def.Threshold, nil
		case DistinctCuisines:
			return snap.CuisineCount >= def.Threshold, nil
		}
		return false, fmt.Errorf("unknown distinct set %q", def.Distinct)
	}
	return false, fmt.Errorf("unknown rule kind %q", def.Kind)
}

func inGeofence(region *GeofenceParams, event *models.MealEvent) bool {
	// No location on the event is a plain non-match.
	if region == nil || event.Latitude == nil || event.Longitude == nil {
		return false
	}
	return utils.WithinRadius(*event.Latitude, *event.Longitude, region.Lat, region.Lng, region.RadiusKm)
}

func contentSatisfied(pred ContentPredicate, sig utils.MealSignals) bool {
	switch pred {
	case ContentSeafood:
		return sig.Protein == utils.ProteinSeafood
	case ContentVegan:
		return sig.IsVegan
	case ContentVegetarian:
		return sig.IsVegetarian
	case ContentSushi:
		return sig.IsSushi
	case ContentTaco:
		return sig.IsTaco
	case ContentTakeout:
		return sig.Setting == utils.SettingTakeout
	}
	return false
}

func (s *AchievementService) emitUnlock(userID uint, def AchievementDefinition, mealID uuid.UUID) {
	for _, fn := range s.onUnlock {
		go fn(userID, def, mealID)
	}
}

func (s *AchievementService) emitChallenge(userID uint, ch models.Challenge) {
	for _, fn := range s.onChallenge {
		go fn(userID, ch)
	}
}

// StampStatus is the catalog merged with one user's earned set, for the
// stamps screen.
type StampStatus struct {
	AchievementDefinition
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earned_at,omitempty"`
}

func (s *AchievementService) StampsForUser(userID uint) ([]StampStatus, error) {
	rows, err := s.achievements.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	earnedAt := make(map[string]time.Time, len(rows))
	for _, row := range rows {
		earnedAt[row.AchievementID] = row.EarnedAt
	}

	out := make([]StampStatus, 0, len(s.catalog))
	for _, def := range s.catalog {
		st := StampStatus{AchievementDefinition: def}
		if at, ok := earnedAt[def.ID]; ok {
			st.Earned = true
			at := at
			st.EarnedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}

// StampProgress reports how far a user is toward each counting stamp.
func (s *AchievementService) StampProgress(userID uint) (map[string]map[string]int, error) {
	agg, err := s.aggregates.Get(userID)
	if err != nil {
		return nil, err
	}

	progress := make(map[string]map[string]int)
	for _, def := range s.catalog {
		var current int
		switch {
		case def.Kind == RuleThresholdCount && def.Counter == CounterSushi:
			current = agg.SushiCount
		case def.Kind == RuleThresholdCount && def.Counter == CounterTakeout:
			current = agg.TakeoutCount
		case def.Kind == RuleDistinctCount && def.Distinct == DistinctCities:
			current = len(agg.Cities)
		case def.Kind == RuleDistinctCount && def.Distinct == DistinctCuisines:
			current = len(agg.Cuisines)
		default:
			continue
		}
		if current > def.Threshold {
			current = def.Threshold
		}
		progress[def.ID] = map[string]int{"current": current, "goal": def.Threshold}
	}
	return progress, nil
}
