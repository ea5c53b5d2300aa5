package models

import "time"

// Exercise names are stored trimmed and lower-cased; the composite unique
// index enforces one exercise per name within a workout.
type Exercise struct {
	ID        string `gorm:"primaryKey;type:varchar(36)" json:"id"`
	WorkoutID string `gorm:"not null;index;type:varchar(36);uniqueIndex:idx_workout_exercise_name" json:"workout_id"`
	Name      string `gorm:"not null;uniqueIndex:idx_workout_exercise_name" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Workout Workout `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Sets    []Set   `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"sets"`
}
