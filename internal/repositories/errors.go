package repositories

import "errors"

var (
	// ErrNotFound covers both genuinely missing records and records owned
	// by another user, so cross-user probes cannot distinguish the two.
	ErrNotFound = errors.New("record not found")

	ErrDuplicateExercise = errors.New("exercise already exists for this workout")
	ErrEmptyExerciseName = errors.New("exercise name is required")
)
