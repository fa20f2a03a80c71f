package routes

import (
	"log"

	"forkful/config"
	"forkful/controllers"
	"forkful/middlewares"
	"forkful/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Notification fan-out (best-effort consumers of engine events).
	hub := services.NewRealtimeHub()
	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push disabled: %v", err)
		push = nil
	}
	notifier := services.NewNotifier(hub, push)

	// Engine wiring.
	mealSvc := services.NewMealService(config.DB)
	challengeSvc := services.NewChallengeService(
		services.NewChallengeStore(config.DB),
		services.NewHTTPFuzzyMatcher(),
	)
	engine := services.NewAchievementService(
		mealSvc,
		services.NewAggregateStore(config.DB),
		services.NewAchievementStore(config.DB),
		challengeSvc,
	)
	engine.OnAchievementUnlocked(notifier.StampUnlocked)
	engine.OnChallengeCompleted(notifier.ChallengeCompleted)

	mealCtl := controllers.NewMealController(mealSvc, engine)
	stampCtl := controllers.NewStampController(engine)
	deviceCtl := controllers.NewDeviceController(push)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.DELETE("/:id", mealCtl.DeleteMeal)
	}

	stamps := r.Group("/stamps")
	stamps.Use(middlewares.AuthMiddleware())
	{
		stamps.GET("", stampCtl.ListStamps)
		stamps.GET("/progress", stampCtl.GetStats)
	}

	challenges := r.Group("/challenges")
	challenges.Use(middlewares.AuthMiddleware())
	{
		challenges.POST("", controllers.CreateChallenge)
		challenges.GET("", controllers.ListChallenges)
		challenges.GET("/active", controllers.ListActiveChallenges)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", deviceCtl.Register)
		devices.POST("/toggle", controllers.ToggleNotifications)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", realtimeCtl.EventsWS)
	}

	return r
}
