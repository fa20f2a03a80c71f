package services

import (
	"context"
	"log"
	"strings"
	"time"

	"forkful/models"
	"forkful/utils"
)

// ChallengeService matches newly logged dishes against the user's open
// challenges. Challenge content itself comes from an external generator;
// this service only drives the active → completed transition.
type ChallengeService struct {
	store        ChallengeStore
	matcher      FuzzyMatcher
	matchTimeout time.Duration
}

func NewChallengeService(store ChallengeStore, matcher FuzzyMatcher) *ChallengeService {
	return &ChallengeService{
		store:        store,
		matcher:      matcher,
		matchTimeout: 8 * time.Second,
	}
}

// MatchMeal checks the meal against each active challenge in order and
// completes the first one that matches. At most one challenge completes
// per meal. A matcher error or timeout counts as "no match" for that
// challenge and is not retried.
func (s *ChallengeService) MatchMeal(event *models.MealEvent, sig utils.MealSignals) (*models.Challenge, error) {
	dish := strings.TrimSpace(event.DishName)
	if dish == "" {
		return nil, nil
	}

	active, err := s.store.ListActive(event.UserID)
	if err != nil {
		return nil, err
	}

	for i := range active {
		ch := active[i]

		ctx, cancel := context.WithTimeout(context.Background(), s.matchTimeout)
		ok, err := s.matcher.Matches(ctx, ch.DishName, ch.CuisineType, dish, sig.Cuisine)
		cancel()
		if err != nil {
			log.Printf("challenge %s: dish match failed: %v", ch.ID, err)
			continue
		}
		if !ok {
			continue
		}

		now := time.Now()
		if err := s.store.MarkCompleted(ch.ID, event.ID, dish, now); err != nil {
			log.Printf("challenge %s: completion not persisted: %v", ch.ID, err)
			continue
		}

		ch.Status = models.ChallengeCompleted
		ch.CompletedAt = &now
		mealID := event.ID
		ch.CompletedMealID = &mealID
		ch.CompletedWithDish = dish
		return &ch, nil
	}
	return nil, nil
}
