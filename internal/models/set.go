package models

import "time"

type Set struct {
	ID         string  `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ExerciseID string  `gorm:"not null;index;type:varchar(36)" json:"exercise_id"`
	Reps       int     `gorm:"not null" json:"reps"`
	Weight     float64 `gorm:"not null" json:"weight"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Exercise Exercise `gorm:"foreignKey:ExerciseID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
