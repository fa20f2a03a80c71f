package controllers

import (
	"net/http"

	"forkful/config"
	"forkful/models"

	"github.com/gin-gonic/gin"
)

// CreateChallenge is the intake endpoint for the external challenge
// generator: it only records the recommendation. Completion is decided by
// the engine when meals are logged.
func CreateChallenge(c *gin.Context) {
	uid := c.GetUint("userID")

	var input struct {
		DishName    string `json:"dish_name" binding:"required"`
		CuisineType string `json:"cuisine_type"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ch := models.Challenge{
		UserID:      uid,
		DishName:    input.DishName,
		CuisineType: input.CuisineType,
		Status:      models.ChallengeActive,
	}
	if err := config.DB.Create(&ch).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ch)
}

func ListChallenges(c *gin.Context) {
	uid := c.GetUint("userID")

	var challenges []models.Challenge
	if err := config.DB.
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenges)
}

func ListActiveChallenges(c *gin.Context) {
	uid := c.GetUint("userID")

	var challenges []models.Challenge
	if err := config.DB.
		Where("user_id = ? AND status = ?", uid, models.ChallengeActive).
		Order("created_at ASC").
		Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, challenges)
}
