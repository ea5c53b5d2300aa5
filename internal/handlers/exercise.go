package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/fitlog-dev/fitlog/internal/repositories"
	"github.com/fitlog-dev/fitlog/internal/types"
	"github.com/fitlog-dev/fitlog/internal/utils"
	"github.com/gin-gonic/gin"
)

type CreateExerciseRequest struct {
	Name      string `json:"name" binding:"required"`
	WorkoutID string `json:"workoutId" binding:"required"`
}

type ExerciseHandler struct {
	exercises *repositories.ExerciseRepository
}

func NewExerciseHandler(exercises *repositories.ExerciseRepository) *ExerciseHandler {
	return &ExerciseHandler{exercises: exercises}
}

func (h *ExerciseHandler) Create(ctx *gin.Context) {
	var body CreateExerciseRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "Exercise name and workoutId are required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	exercise, err := h.exercises.Create(userID, body.WorkoutID, body.Name)

	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmptyExerciseName):
			ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "Exercise name is required"})
		case errors.Is(err, repositories.ErrDuplicateExercise):
			ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "Exercise already exists for this workout"})
		case errors.Is(err, repositories.ErrNotFound):
			ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: "Workout not found"})
		default:
			log.Printf("Failed to create exercise: %v", err)
			ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to create exercise"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, exercise)
}

func (h *ExerciseHandler) List(ctx *gin.Context) {
	workoutID := ctx.Query("workoutId")

	if workoutID == "" {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "workoutId is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	exercises, err := h.exercises.ListByWorkout(userID, workoutID)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: "Workout not found"})
			return
		}
		log.Printf("Failed to list exercises: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to fetch exercises"})
		return
	}

	ctx.JSON(http.StatusOK, exercises)
}
