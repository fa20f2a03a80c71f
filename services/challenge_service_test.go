package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"forkful/models"
	"forkful/utils"

	"github.com/google/uuid"
)

type memChallengeStore struct {
	mu         sync.Mutex
	challenges []models.Challenge
}

func (s *memChallengeStore) add(userID uint, dish, cuisine string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := models.Challenge{
		ID:          uuid.New(),
		UserID:      userID,
		DishName:    dish,
		CuisineType: cuisine,
		Status:      models.ChallengeActive,
		CreatedAt:   time.Now(),
	}
	s.challenges = append(s.challenges, ch)
	return ch.ID
}

func (s *memChallengeStore) get(id uuid.UUID) models.Challenge {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.challenges {
		if ch.ID == id {
			return ch
		}
	}
	return models.Challenge{}
}

func (s *memChallengeStore) ListActive(userID uint) ([]models.Challenge, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Challenge
	for _, ch := range s.challenges {
		if ch.UserID == userID && ch.Status == models.ChallengeActive {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (s *memChallengeStore) MarkCompleted(id uuid.UUID, mealID uuid.UUID, dishName string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.challenges {
		ch := &s.challenges[i]
		if ch.ID == id && ch.Status == models.ChallengeActive {
			ch.Status = models.ChallengeCompleted
			ch.CompletedAt = &at
			ch.CompletedMealID = &mealID
			ch.CompletedWithDish = dishName
		}
	}
	return nil
}

// substringMatcher stands in for the external dish matcher: a challenge
// dish matches when it appears inside the logged dish name.
type substringMatcher struct {
	calls int
	err   error
}

func (m *substringMatcher) Matches(ctx context.Context, challengeDish, challengeCuisine, dishName, cuisine string) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return strings.Contains(strings.ToLower(dishName), strings.ToLower(challengeDish)), nil
}

func TestChallengeCompletesOnFuzzyMatch(t *testing.T) {
	store := &memChallengeStore{}
	id := store.add(1, "Pad Thai", "thai")
	svc := NewChallengeService(store, &substringMatcher{})

	meal := &models.MealEvent{ID: uuid.New(), UserID: 1, DishName: "Pad Thai Noodles", CuisineType: "thai"}
	ch, err := svc.MatchMeal(meal, utils.ClassifyMeal(meal))
	if err != nil {
		t.Fatal(err)
	}
	if ch == nil {
		t.Fatal("expected a completed challenge")
	}
	if ch.Status != models.ChallengeCompleted {
		t.Errorf("status = %q, want completed", ch.Status)
	}
	if ch.CompletedWithDish != "Pad Thai Noodles" {
		t.Errorf("completedWithDish = %q", ch.CompletedWithDish)
	}
	if ch.CompletedMealID == nil || *ch.CompletedMealID != meal.ID {
		t.Error("triggering meal id not recorded")
	}

	// Persisted state never reverts.
	if got := store.get(id); got.Status != models.ChallengeCompleted {
		t.Errorf("stored status = %q, want completed", got.Status)
	}
}

func TestAtMostOneChallengePerMeal(t *testing.T) {
	store := &memChallengeStore{}
	first := store.add(1, "Ramen", "japanese")
	second := store.add(1, "Ramen Bowl", "japanese")
	matcher := &substringMatcher{}
	svc := NewChallengeService(store, matcher)

	meal := &models.MealEvent{ID: uuid.New(), UserID: 1, DishName: "Tonkotsu Ramen Bowl"}
	ch, err := svc.MatchMeal(meal, utils.ClassifyMeal(meal))
	if err != nil {
		t.Fatal(err)
	}
	if ch == nil || ch.ID != first {
		t.Fatal("first matching challenge in retrieval order should win")
	}
	if matcher.calls != 1 {
		t.Errorf("matcher called %d times, want 1 (stop after first match)", matcher.calls)
	}
	if got := store.get(second); got.Status != models.ChallengeActive {
		t.Error("second challenge should stay active")
	}
}

func TestMatcherErrorMeansNoCompletion(t *testing.T) {
	store := &memChallengeStore{}
	id := store.add(1, "Pad Thai", "thai")
	svc := NewChallengeService(store, &substringMatcher{err: errors.New("matcher timeout")})

	meal := &models.MealEvent{ID: uuid.New(), UserID: 1, DishName: "Pad Thai"}
	ch, err := svc.MatchMeal(meal, utils.ClassifyMeal(meal))
	if err != nil {
		t.Fatalf("matcher errors must not propagate, got %v", err)
	}
	if ch != nil {
		t.Error("matcher failure treated as a completion")
	}
	if got := store.get(id); got.Status != models.ChallengeActive {
		t.Error("challenge flipped despite matcher failure")
	}
}

func TestNoDishNameSkipsMatching(t *testing.T) {
	store := &memChallengeStore{}
	store.add(1, "Pad Thai", "thai")
	matcher := &substringMatcher{}
	svc := NewChallengeService(store, matcher)

	meal := &models.MealEvent{ID: uuid.New(), UserID: 1, DishName: "   "}
	ch, err := svc.MatchMeal(meal, utils.ClassifyMeal(meal))
	if err != nil || ch != nil {
		t.Fatalf("blank dish should be a no-op, got ch=%v err=%v", ch, err)
	}
	if matcher.calls != 0 {
		t.Errorf("matcher called %d times for a blank dish", matcher.calls)
	}
}

func TestEngineReportsCompletedChallenge(t *testing.T) {
	store := &memChallengeStore{}
	store.add(1, "Pad Thai", "thai")
	challengeSvc := NewChallengeService(store, &substringMatcher{})

	env := newTestEngine()
	engine := NewAchievementService(env.meals, env.aggs, env.achs, challengeSvc)

	completed := make(chan models.Challenge, 1)
	engine.OnChallengeCompleted(func(userID uint, ch models.Challenge) {
		completed <- ch
	})

	meal := &models.MealEvent{ID: uuid.New(), UserID: 1, DishName: "Pad Thai Noodles", CuisineType: "thai"}
	env.meals.add(meal.ID)
	res := engine.EvaluateMealEvent(meal)

	if res.CompletedChallenge == nil {
		t.Fatal("evaluation result should carry the completed challenge")
	}
	select {
	case ch := <-completed:
		if ch.DishName != "Pad Thai" {
			t.Errorf("callback challenge = %q", ch.DishName)
		}
	case <-time.After(time.Second):
		t.Fatal("challenge-completed callback never fired")
	}
}
