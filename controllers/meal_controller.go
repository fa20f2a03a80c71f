package controllers

import (
	"net/http"

	"forkful/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MealController struct {
	Meals  *services.MealService
	Engine *services.AchievementService
}

// constructor
func NewMealController(ms *services.MealService, engine *services.AchievementService) *MealController {
	return &MealController{Meals: ms, Engine: engine}
}

// LogMeal persists the meal, then runs the stamp/challenge engine on it.
// The response carries whatever the pass unlocked.
func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var req services.LogMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.LogMeal(uid, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := mc.Engine.EvaluateMealEvent(meal)

	c.JSON(http.StatusCreated, gin.H{
		"meal":                meal,
		"unlocked":            result.Unlocked,
		"completed_challenge": result.CompletedChallenge,
	})
}

func (mc *MealController) ListMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	meals, err := mc.Meals.ListMeals(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.Meals.GetMeal(uid, mealID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(http.StatusOK, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	mealID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.Meals.DeleteMeal(uid, mealID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "meal deleted"})
}
