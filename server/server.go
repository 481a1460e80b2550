package server

import (
	"workout-server/confs"
	"workout-server/db"
	httpHandler "workout-server/handlers/http"
	"workout-server/repositories"
	"workout-server/services"
	"workout-server/sessions"
	"workout-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app  *gin.Engine
	db   db.Database
	conf confs.Config
}

func NewServer(database db.Database, conf confs.Config) *Server {
	return &Server{
		app:  gin.Default(),
		db:   database,
		conf: conf,
	}
}

func (s *Server) Start() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true // Allow all origins for development
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = false
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	workoutRepo := repositories.NewWorkoutPgRepository(s.db)
	muscleGroupRepo := repositories.NewMuscleGroupPgRepository(s.db)
	exerciseRepo := repositories.NewExercisePgRepository(s.db)
	challengeRepo := repositories.NewChallengePgRepository(s.db)
	userChallengeRepo := repositories.NewUserChallengePgRepository(s.db)

	// Statistics snapshots are cached per user and invalidated on writes
	statsService := services.NewStatisticsService(exerciseRepo, muscleGroupRepo, workoutRepo, s.conf.StatsTTL)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, s.conf.BcryptCost)
	workoutUseCase := usecases.NewWorkoutUseCase(workoutRepo, exerciseRepo, statsService)
	exerciseUseCase := usecases.NewExerciseUseCase(exerciseRepo, workoutRepo, muscleGroupRepo, statsService)
	muscleGroupUseCase := usecases.NewMuscleGroupUseCase(muscleGroupRepo)
	challengeUseCase := usecases.NewChallengeUseCase(challengeRepo, userChallengeRepo, workoutRepo, exerciseRepo)

	// Session store and handlers
	store := sessions.NewStore(s.conf.SessionTTL)
	authHandler := httpHandler.NewAuthHandler(userUseCase, store)
	profileHandler := httpHandler.NewProfileHandler(userUseCase, workoutUseCase)
	workoutHandler := httpHandler.NewWorkoutHandler(workoutUseCase)
	exerciseHandler := httpHandler.NewExerciseHandler(exerciseUseCase, workoutUseCase)
	muscleGroupHandler := httpHandler.NewMuscleGroupHandler(muscleGroupUseCase)
	challengeHandler := httpHandler.NewChallengeHandler(challengeUseCase)
	statisticsHandler := httpHandler.NewStatisticsHandler(statsService)
	dashboardHandler := httpHandler.NewDashboardHandler(workoutUseCase, challengeUseCase)
	historyHandler := httpHandler.NewHistoryHandler(workoutUseCase, exerciseUseCase)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(httpHandler.RequireSession(store))
		{
			protected.GET("/dashboard", dashboardHandler.GetDashboard)
			protected.GET("/history", historyHandler.GetHistory)
			protected.GET("/statistics", statisticsHandler.GetStatistics)

			profile := protected.Group("/profile")
			{
				profile.GET("", profileHandler.GetProfile)
				profile.PUT("", profileHandler.UpdateProfile)
				profile.PUT("/password", profileHandler.UpdatePassword)
				profile.GET("/:id", profileHandler.GetUserProfile)
			}

			workouts := protected.Group("/workouts")
			{
				workouts.POST("", workoutHandler.CreateWorkout)
				workouts.GET("", workoutHandler.GetAllWorkouts)
				workouts.GET("/:id", workoutHandler.GetWorkout)
				workouts.PUT("/:id", workoutHandler.UpdateWorkout)
				workouts.DELETE("/:id", workoutHandler.DeleteWorkout)
				workouts.POST("/:id/complete", workoutHandler.CompleteWorkout)
				workouts.POST("/:id/share", workoutHandler.ShareWorkout)
			}

			exercises := protected.Group("/exercises")
			{
				exercises.GET("/types", exerciseHandler.GetExerciseTypes)
				exercises.POST("", exerciseHandler.CreateExercise)
				exercises.GET("/:id", exerciseHandler.GetExercise)
				exercises.PUT("/:id", exerciseHandler.UpdateExercise)
				exercises.DELETE("/:id", exerciseHandler.DeleteExercise)
			}

			muscleGroups := protected.Group("/muscle-groups")
			{
				muscleGroups.POST("", muscleGroupHandler.CreateMuscleGroup)
				muscleGroups.GET("", muscleGroupHandler.GetAllMuscleGroups)
			}

			challenges := protected.Group("/challenges")
			{
				challenges.POST("", challengeHandler.CreateChallenge)
				challenges.GET("", challengeHandler.GetSharedChallenges)
				challenges.GET("/templates", challengeHandler.GetChallengeTemplates)
				challenges.GET("/joined", challengeHandler.GetJoinedChallenges)
				challenges.GET("/workout/:id", challengeHandler.ViewChallenge)
				challenges.POST("/workout/:id/join", challengeHandler.JoinChallenge)
				challenges.POST("/:id/progress", challengeHandler.MarkProgress)
			}
		}
	}

	s.app.Run(s.conf.HTTPAddress)
}
