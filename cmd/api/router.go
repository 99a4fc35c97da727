package api

import (
	"net/http"

	authDelivery "fitness-backend/internal/auth/delivery"
	coachDelivery "fitness-backend/internal/coach/delivery"
	dashboardDelivery "fitness-backend/internal/dashboard/delivery"
	exerciseDelivery "fitness-backend/internal/exercise/delivery"
	profileDelivery "fitness-backend/internal/profile/delivery"
	progressDelivery "fitness-backend/internal/progress/delivery"
	workoutDelivery "fitness-backend/internal/workout/delivery"
	"fitness-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, uc Usecases) {
	authHandler := authDelivery.NewAuthHandler(uc.Auth)
	exerciseHandler := exerciseDelivery.NewExerciseHandler(uc.Exercises)
	workoutHandler := workoutDelivery.NewWorkoutHandler(uc.Workouts)
	progressHandler := progressDelivery.NewProgressHandler(uc.Progress)
	profileHandler := profileDelivery.NewProfileHandler(uc.Profile)
	dashboardHandler := dashboardDelivery.NewDashboardHandler(uc.Dashboard)
	coachHandler := coachDelivery.NewCoachHandler(uc.Coach)
	requireSession := authDelivery.AuthMiddleware(uc.Auth)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Fitness Tracker API"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.GET("/session-data", authHandler.GetSessionData)
			auth.POST("/logout", requireSession, authHandler.Logout)
		}

		// Exercise catalog (public)
		api.GET("/exercises", exerciseHandler.GetExercises)

		workouts := api.Group("/workouts")
		workouts.Use(requireSession)
		{
			workouts.POST("", workoutHandler.CreateWorkout)
			workouts.GET("", workoutHandler.GetWorkouts)
			workouts.GET("/:id", workoutHandler.GetWorkout)
		}

		progress := api.Group("/progress")
		progress.Use(requireSession)
		{
			progress.POST("", progressHandler.AddProgress)
			progress.GET("", progressHandler.GetProgress)
		}

		coach := api.Group("/ai")
		coach.Use(requireSession)
		{
			coach.POST("/ask", coachHandler.Ask)
			coach.GET("/conversations", coachHandler.ListConversations)
		}

		profile := api.Group("/profile")
		profile.Use(requireSession)
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		api.GET("/dashboard/stats", requireSession, dashboardHandler.GetStats)
	}
}
