package main

import (
	"log"

	"github.com/fitlog-dev/fitlog/db"
	"github.com/fitlog-dev/fitlog/internal/auth"
	"github.com/fitlog-dev/fitlog/internal/config"
	"github.com/fitlog-dev/fitlog/internal/handlers"
	"github.com/fitlog-dev/fitlog/internal/repositories"
	"github.com/fitlog-dev/fitlog/internal/router"
	"github.com/fitlog-dev/fitlog/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	database, err := db.Connect(cfg.DatabaseDSN)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	userRepo := repositories.NewGormUserRepository(database)
	workoutRepo := repositories.NewWorkoutRepository(database)
	exerciseRepo := repositories.NewExerciseRepository(database)
	setRepo := repositories.NewSetRepository(database)

	authService := services.NewAuthService(userRepo, tokens)

	r := router.New(
		cfg,
		authService,
		handlers.NewAuthHandler(authService),
		handlers.NewWorkoutHandler(workoutRepo),
		handlers.NewExerciseHandler(exerciseRepo),
		handlers.NewSetHandler(setRepo),
	)

	log.Printf("Starting server on port %s", cfg.Port)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
