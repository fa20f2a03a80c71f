package controllers

import (
	"net/http"

	"forkful/services"

	"github.com/gin-gonic/gin"
)

type StampController struct {
	Engine *services.AchievementService
}

// constructor
func NewStampController(engine *services.AchievementService) *StampController {
	return &StampController{Engine: engine}
}

// ListStamps returns the full catalog with the caller's earned flags.
func (sc *StampController) ListStamps(c *gin.Context) {
	uid := c.GetUint("userID")

	stamps, err := sc.Engine.StampsForUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stamps)
}

// GetStats reports the aggregate snapshot plus progress toward each
// counting stamp.
func (sc *StampController) GetStats(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := sc.Engine.StampProgress(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}
