package repositories

import (
	"errors"
	"fmt"

	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SetRepository struct {
	db *gorm.DB
}

func NewSetRepository(db *gorm.DB) *SetRepository {
	return &SetRepository{db: db}
}

// Create records a set under an exercise whose ownership chain resolves
// to the user.
func (r *SetRepository) Create(userID, exerciseID string, reps int, weight float64) (*models.Set, error) {
	var set models.Set

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var exercise models.Exercise

		err := tx.
			Select("exercises.*").
			Joins("JOIN workouts ON workouts.id = exercises.workout_id").
			Where("exercises.id = ? AND workouts.user_id = ?", exerciseID, userID).
			First(&exercise).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get exercise: %w", err)
		}

		set = models.Set{
			ID:         uuid.New().String(),
			ExerciseID: exercise.ID,
			Reps:       reps,
			Weight:     weight,
		}

		if err := tx.Create(&set).Error; err != nil {
			return fmt.Errorf("failed to create set: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &set, nil
}

// Delete removes the set only when its exercise and workout belong to the
// user; anything else reports ErrNotFound.
func (r *SetRepository) Delete(userID, setID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var set models.Set

		err := tx.
			Select("sets.*").
			Joins("JOIN exercises ON exercises.id = sets.exercise_id").
			Joins("JOIN workouts ON workouts.id = exercises.workout_id").
			Where("sets.id = ? AND workouts.user_id = ?", setID, userID).
			First(&set).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get set: %w", err)
		}

		if err := tx.Delete(&set).Error; err != nil {
			return fmt.Errorf("failed to delete set: %w", err)
		}

		return nil
	})
}
