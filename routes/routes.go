package routes

import (
	"github.com/Prashant8008/Fitness-Ai/config"
	"github.com/Prashant8008/Fitness-Ai/controllers"
	"github.com/Prashant8008/Fitness-Ai/middlewares"
	"github.com/Prashant8008/Fitness-Ai/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires services into controllers and registers the HTML
// views and the JSON API.
func SetupRouter(db *gorm.DB, cfg *config.Config, adviser services.Adviser) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	authSvc := services.NewAuthService(db, cfg.JWTSecret)
	profileSvc := services.NewProfileService(db)
	scheduleSvc := services.NewScheduleService(db)
	progressSvc := services.NewProgressService(db)
	goalSvc := services.NewGoalService(db)

	auth := &controllers.AuthController{Auth: authSvc}
	profile := &controllers.ProfileController{Profiles: profileSvc}
	chat := &controllers.ChatController{Profiles: profileSvc, Adviser: adviser}
	dashboard := &controllers.DashboardController{
		Trainer:    services.NewTrainerService(db),
		SampleData: services.NewSampleDataService(db),
	}
	workouts := &controllers.WorkoutController{Schedule: scheduleSvc}
	meals := &controllers.MealController{Schedule: scheduleSvc}
	progress := &controllers.ProgressController{Progress: progressSvc, Goals: goalSvc}

	// Public pages
	r.GET("/register", auth.ShowRegister)
	r.POST("/register", auth.Register)
	r.GET("/login", auth.ShowLogin)
	r.POST("/login", auth.Login)
	r.POST("/logout", auth.Logout)
	r.GET("/", dashboard.Home)

	// Authenticated pages
	pages := r.Group("/")
	pages.Use(middlewares.RequireAuth(cfg.JWTSecret))
	{
		pages.GET("/chat", chat.ShowChat)
		pages.POST("/chat", chat.Chat)
		pages.GET("/profile", profile.ShowProfile)
		pages.POST("/profile", profile.SaveProfile)
		pages.GET("/dashboard", dashboard.Dashboard)
		pages.GET("/trainer", dashboard.TrainerPage)
		pages.POST("/create-sample-data", dashboard.CreateSampleData)
	}

	// JSON API for the mobile client
	api := r.Group("/api")
	{
		api.POST("/auth/register", auth.RegisterAPI)
		api.POST("/auth/login", auth.LoginAPI)

		protected := api.Group("/")
		protected.Use(middlewares.RequireAuthAPI(cfg.JWTSecret))
		{
			protected.GET("/user/profile", profile.GetProfileAPI)
			protected.PUT("/user/profile", profile.UpdateProfileAPI)
			protected.GET("/user/dashboard", dashboard.DashboardAPI)

			protected.GET("/workouts", workouts.List)
			protected.POST("/workouts", workouts.Create)
			protected.PUT("/workouts/:id", workouts.Update)
			protected.DELETE("/workouts/:id", workouts.Delete)
			protected.PATCH("/workouts/:id/complete", workouts.MarkComplete)

			protected.GET("/meals", meals.List)
			protected.POST("/meals", meals.Create)
			protected.PUT("/meals/:id", meals.Update)
			protected.DELETE("/meals/:id", meals.Delete)
			protected.PATCH("/meals/:id/consume", meals.MarkConsumed)

			protected.GET("/progress", progress.ListProgress)
			protected.POST("/progress", progress.UpdateProgress)
			protected.GET("/goals", progress.ListGoals)
			protected.POST("/goals", progress.CreateGoal)
			protected.PUT("/goals/:id", progress.UpdateGoal)

			protected.POST("/chat", chat.ChatAPI)
		}
	}

	return r
}
