package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/fitlog-dev/fitlog/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkoutRepository performs every workout access scoped to the owning
// user. Missing and non-owned workouts are indistinguishable to callers.
type WorkoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create produces an empty workout owned by the user, dated now.
func (r *WorkoutRepository) Create(userID string) (*models.Workout, error) {
	workout := models.Workout{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   time.Now(),
	}

	if err := r.db.Create(&workout).Error; err != nil {
		return nil, fmt.Errorf("failed to create workout: %w", err)
	}

	return &workout, nil
}

// ListByUser returns the user's workouts newest first (ties broken by id)
// with exercises and their sets attached in one aggregate fetch. Exercises
// come back alphabetical.
func (r *WorkoutRepository) ListByUser(userID string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)

	err := r.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("user_id = ?", userID).
		Order("date DESC, id ASC").
		Find(&workouts).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	return workouts, nil
}

// GetByID returns the workout with its exercises and sets, or ErrNotFound
// when it does not exist or belongs to someone else.
func (r *WorkoutRepository) GetByID(userID, workoutID string) (*models.Workout, error) {
	var workout models.Workout

	err := r.db.
		Preload("Exercises", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Preload("Exercises.Sets", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Where("id = ? AND user_id = ?", workoutID, userID).
		First(&workout).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workout: %w", err)
	}

	return &workout, nil
}

// Delete removes the workout and cascades over its exercises and sets in
// a single transaction. Non-owned ids report ErrNotFound and touch nothing.
func (r *WorkoutRepository) Delete(userID, workoutID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var workout models.Workout

		if err := tx.Where("id = ? AND user_id = ?", workoutID, userID).First(&workout).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get workout: %w", err)
		}

		exerciseIDs := tx.Model(&models.Exercise{}).Select("id").Where("workout_id = ?", workout.ID)

		if err := tx.Where("exercise_id IN (?)", exerciseIDs).Delete(&models.Set{}).Error; err != nil {
			return fmt.Errorf("failed to delete sets: %w", err)
		}

		if err := tx.Where("workout_id = ?", workout.ID).Delete(&models.Exercise{}).Error; err != nil {
			return fmt.Errorf("failed to delete exercises: %w", err)
		}

		if err := tx.Delete(&workout).Error; err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}

		return nil
	})
}
