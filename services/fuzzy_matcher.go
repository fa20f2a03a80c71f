package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// FuzzyMatcher decides whether a logged dish satisfies a challenge's
// recommended dish. It is an external call: callers pass a deadline via
// ctx, and any error or timeout means "no match".
type FuzzyMatcher interface {
	Matches(ctx context.Context, challengeDish, challengeCuisine, dishName, cuisine string) (bool, error)
}

// HTTPFuzzyMatcher calls the hosted dish-matching endpoint.
type HTTPFuzzyMatcher struct {
	client   *http.Client
	endpoint string
	token    string
}

func NewHTTPFuzzyMatcher() *HTTPFuzzyMatcher {
	return &HTTPFuzzyMatcher{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: os.Getenv("DISH_MATCH_URL"),
		token:    os.Getenv("DISH_MATCH_TOKEN"),
	}
}

type matchRequest struct {
	ChallengeDish    string `json:"challenge_dish"`
	ChallengeCuisine string `json:"challenge_cuisine,omitempty"`
	DishName         string `json:"dish_name"`
	Cuisine          string `json:"cuisine,omitempty"`
}

type matchResponse struct {
	Match bool `json:"match"`
}

func (m *HTTPFuzzyMatcher) Matches(ctx context.Context, challengeDish, challengeCuisine, dishName, cuisine string) (bool, error) {
	if m.endpoint == "" {
		return false, fmt.Errorf("DISH_MATCH_URL not set")
	}

	payload, err := json.Marshal(matchRequest{
		ChallengeDish:    challengeDish,
		ChallengeCuisine: challengeCuisine,
		DishName:         dishName,
		Cuisine:          cuisine,
	})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("dish matcher returned %d: %s", resp.StatusCode, string(body))
	}

	var out matchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, err
	}
	return out.Match, nil
}
