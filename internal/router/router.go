package router

import (
	"time"

	"github.com/fitlog-dev/fitlog/internal/config"
	"github.com/fitlog-dev/fitlog/internal/handlers"
	"github.com/fitlog-dev/fitlog/internal/middleware"
	"github.com/fitlog-dev/fitlog/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func New(
	cfg config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	workoutHandler *handlers.WorkoutHandler,
	exerciseHandler *handlers.ExerciseHandler,
	setHandler *handlers.SetHandler,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middleware.AuthMiddleware(authService)

	r.GET("/health", handlers.HealthCheck)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authRequired, authHandler.Me)
	}

	api := r.Group("/api", authRequired)
	{
		api.POST("/workouts", workoutHandler.Create)
		api.GET("/workouts", workoutHandler.List)
		api.GET("/workouts/:workout_id", workoutHandler.Get)
		api.DELETE("/workouts/:workout_id", workoutHandler.Delete)
	}

	exercises := r.Group("/exercises", authRequired)
	{
		exercises.POST("", exerciseHandler.Create)
		exercises.GET("", exerciseHandler.List)
	}

	sets := r.Group("/sets", authRequired)
	{
		sets.POST("", setHandler.Create)
		sets.DELETE("/:set_id", setHandler.Delete)
	}

	return r
}
