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

// Reps and Weight are pointers so an absent field fails binding instead
// of silently persisting a zero.
type CreateSetRequest struct {
	Reps       *int     `json:"reps" binding:"required,gt=0"`
	Weight     *float64 `json:"weight" binding:"required,gte=0"`
	ExerciseID string   `json:"exerciseId" binding:"required"`
}

type SetHandler struct {
	sets *repositories.SetRepository
}

func NewSetHandler(sets *repositories.SetRepository) *SetHandler {
	return &SetHandler{sets: sets}
}

func (h *SetHandler) Create(ctx *gin.Context) {
	var body CreateSetRequest

	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, types.ErrorResponse{Message: "reps (> 0), weight (>= 0) and exerciseId are required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	set, err := h.sets.Create(userID, body.ExerciseID, *body.Reps, *body.Weight)

	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: "Exercise not found"})
			return
		}
		log.Printf("Failed to create set: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to create set"})
		return
	}

	ctx.JSON(http.StatusCreated, set)
}

func (h *SetHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, types.ErrorResponse{Message: "User not authenticated"})
		return
	}

	if err := h.sets.Delete(userID, ctx.Param("set_id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, types.ErrorResponse{Message: "Set not found"})
			return
		}
		log.Printf("Failed to delete set: %v", err)
		ctx.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Failed to delete set"})
		return
	}

	ctx.JSON(http.StatusOK, types.MessageResponse{Message: "Set deleted"})
}
