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

type WorkoutHandler struct {
	workouts *repositories.WorkoutRepository
}

func NewWorkoutHandler(workouts *repositories.WorkoutRepository) *WorkoutHandler {
	return &WorkoutHandler{workouts: workouts}
}

func (h *WorkoutHandler) Create(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	workout, err := h.workouts.Create(userID)

	if err != nil {
		log.Printf("Failed to create workout: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to create workout"})
		return
	}

	ctx.JSON(http.StatusCreated, workout)
}

func (h *WorkoutHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	workouts, err := h.workouts.ListByUser(userID)

	if err != nil {
		log.Printf("Failed to list workouts: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to fetch workouts"})
		return
	}

	ctx.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) Get(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	workout, err := h.workouts.GetByID(userID, ctx.Param("workout_id"))

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: "Workout not found"})
			return
		}
		log.Printf("Failed to get workout: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to fetch workout"})
		return
	}

	ctx.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	if err := h.workouts.Delete(userID, ctx.Param("workout_id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: "Workout not found"})
			return
		}
		log.Printf("Failed to delete workout: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to delete workout"})
		return
	}

	ctx.JSON(http.StatusOK, types.MessageResponse{Message: "Workout deleted"})
}
