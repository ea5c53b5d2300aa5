package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

// NormalizeExerciseName is the canonical form used for uniqueness and
// storage: trimmed and lower-cased.
func NormalizeExerciseName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Create adds an exercise to one of the user's workouts. The workout must
// resolve to the caller, and the normalized name must be unused within it.
func (r *ExerciseRepository) Create(userID, workoutID, name string) (*models.Exercise, error) {
	normalized := NormalizeExerciseName(name)

	if normalized == "" {
		return nil, ErrEmptyExerciseName
	}

	var exercise models.Exercise

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout

		if err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get workout: %w", err)
		}

		var count int64

		if err := tx.Model(&models.Exercise{}).
			Where("workout_id = ? AND name = ?", workout.ID, normalized).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check exercise name: %w", err)
		}

		if count > 0 {
			return ErrDuplicateExercise
		}

		exercise = models.Exercise{
			ID:        uuid.New().String(),
			WorkoutID: workout.ID,
			Name:      normalized,
		}

		if err := tx.Create(&exercise).Error; err != nil {
			// The unique index catches a racing create that slipped past
			// the check above.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateExercise
			}
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &exercise, nil
}

// ListByWorkout returns the workout's exercises alphabetically, or
// ErrNotFound when the workout does not resolve to the caller.
func (r *ExerciseRepository) ListByWorkout(userID, workoutID string) ([]models.Exercise, error) {
	var workout models.Workout

	if err := r.db.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	exercises := make([]models.Exercise, 0)

	if err := r.db.Where("workout_id = ?", workout.ID).Order("name ASC").Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	return exercises, nil
}
