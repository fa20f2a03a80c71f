package services

import (
	"forkful/models"

	"github.com/google/uuid"
)

// Notifier is the boundary-side consumer of the engine's unlock and
// completion callbacks: websocket toast plus push. Everything here is
// best-effort — a dropped notification never affects persisted state.
type Notifier struct {
	rt *RealtimeHub
	ps *PushService
}

func NewNotifier(rt *RealtimeHub, ps *PushService) *Notifier {
	return &Notifier{rt: rt, ps: ps}
}

func (n *Notifier) StampUnlocked(userID uint, def AchievementDefinition, mealID uuid.UUID) {
	if n.rt != nil {
		n.rt.BroadcastToUser(userID, map[string]any{
			"kind":    "stamp.unlocked",
			"stamp":   def,
			"meal_id": mealID,
		})
	}
	if n.ps != nil {
		n.ps.PushToUser(userID, "Stamp earned!", def.Name+" — "+def.Description, map[string]string{
			"type":    "stamp",
			"stampId": def.ID,
		})
	}
}

func (n *Notifier) ChallengeCompleted(userID uint, ch models.Challenge) {
	if n.rt != nil {
		n.rt.BroadcastToUser(userID, map[string]any{
			"kind":      "challenge.completed",
			"challenge": ch,
		})
	}
	if n.ps != nil {
		n.ps.PushToUser(userID, "Challenge complete!", ch.DishName, map[string]string{
			"type":        "challenge",
			"challengeId": ch.ID.String(),
		})
	}
}
