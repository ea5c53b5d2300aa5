package models

import "time"

type Workout struct {
	ID     string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID string    `gorm:"not null;index;type:varchar(36)" json:"user_id"`
	Date   time.Time `gorm:"not null" json:"date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Exercises []Exercise `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"exercises"`
}
