// ABOUTME: Derived progress statistics, never persisted.
// ABOUTME: Computed by the stats engine from sessions and sets.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ProgressStats summarizes a user's training history.
type ProgressStats struct {
	TotalWorkouts    int
	CurrentStreak    int
	LongestStreak    int // currently mirrors CurrentStreak
	TotalVolume      float64
	FavoriteExercise *uuid.UUID // nil when no sets logged
	AverageDuration  time.Duration
}

// ExerciseProgress summarizes history for a single exercise.
// MaxWeight and MaxReps are independent maxima and may come from
// different sets.
type ExerciseProgress struct {
	ExerciseID    uuid.UUID
	MaxWeight     float64
	MaxReps       int
	TotalVolume   float64
	LastPerformed time.Time
}
