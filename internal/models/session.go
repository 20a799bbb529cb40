// ABOUTME: Session and WorkoutSet models for logged workouts.
// ABOUTME: Sessions are created open and mutated once to mark completion.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one performance of a split day on a calendar date.
type Session struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	SplitDayID  uuid.UUID
	Date        time.Time // calendar date, midnight UTC
	CreatedAt   time.Time
	CompletedAt *time.Time
	Completed   bool
}

// NewSession creates an open session dated today.
func NewSession(userID, splitDayID uuid.UUID) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.New(),
		UserID:     userID,
		SplitDayID: splitDayID,
		Date:       DateOf(now),
		CreatedAt:  now,
	}
}

// WithDate sets a custom calendar date.
func (s *Session) WithDate(t time.Time) *Session {
	s.Date = DateOf(t)
	return s
}

// MarkCompleted flags the session complete at the given time.
func (s *Session) MarkCompleted(t time.Time) {
	s.Completed = true
	s.CompletedAt = &t
}

// WorkoutSet represents one recorded (reps, weight) unit within a session.
// Immutable once written. Weight 0 means bodyweight.
type WorkoutSet struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	ExerciseID uuid.UUID
	SetNumber  int // 1-based within the session/exercise
	Reps       int
	Weight     float64
}

// NewWorkoutSet creates a set record.
func NewWorkoutSet(sessionID, exerciseID uuid.UUID, setNumber, reps int, weight float64) *WorkoutSet {
	return &WorkoutSet{
		ID:         uuid.New(),
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		SetNumber:  setNumber,
		Reps:       reps,
		Weight:     weight,
	}
}

// Volume returns weight times reps for this set.
func (ws *WorkoutSet) Volume() float64 {
	return ws.Weight * float64(ws.Reps)
}

// DateOf truncates a time to its calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
