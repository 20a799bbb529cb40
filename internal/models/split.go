// ABOUTME: Split, SplitDay, and Exercise models for weekly workout plans.
// ABOUTME: A split owns days ordered by weekday; days own exercises ordered by index.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Split represents a named, user-owned weekly workout plan.
type Split struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewSplit creates a new Split with generated UUID and current timestamp.
func NewSplit(userID uuid.UUID, name string) *Split {
	return &Split{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// SplitDay represents one weekday slot in a split.
// DayOfWeek numbering is caller-defined; days sort ascending by it.
type SplitDay struct {
	ID        uuid.UUID
	SplitID   uuid.UUID
	DayOfWeek int
	Name      string
	IsRestDay bool
}

// NewSplitDay creates a workout day in a split.
func NewSplitDay(splitID uuid.UUID, dayOfWeek int, name string) *SplitDay {
	return &SplitDay{
		ID:        uuid.New(),
		SplitID:   splitID,
		DayOfWeek: dayOfWeek,
		Name:      name,
	}
}

// NewRestDay creates a rest day in a split.
func NewRestDay(splitID uuid.UUID, dayOfWeek int, name string) *SplitDay {
	d := NewSplitDay(splitID, dayOfWeek, name)
	d.IsRestDay = true
	return d
}

// Exercise represents one exercise slot within a split day.
// Order is 1-based and unique within the day.
type Exercise struct {
	ID          uuid.UUID
	SplitDayID  uuid.UUID
	Name        string
	DefaultSets int
	RestSeconds int
	Note        *string
	Order       int
	MuscleGroup string // free text, possibly comma-joined
}

// NewExercise creates an exercise at the given 1-based order position.
func NewExercise(splitDayID uuid.UUID, name string, order int) *Exercise {
	return &Exercise{
		ID:          uuid.New(),
		SplitDayID:  splitDayID,
		Name:        name,
		DefaultSets: 3,
		RestSeconds: 90,
		Order:       order,
	}
}

// WithDefaultSets sets the default working-set count.
func (e *Exercise) WithDefaultSets(n int) *Exercise {
	e.DefaultSets = n
	return e
}

// WithRestSeconds sets the between-set rest time.
func (e *Exercise) WithRestSeconds(s int) *Exercise {
	e.RestSeconds = s
	return e
}

// WithNote sets a free-text note.
func (e *Exercise) WithNote(note string) *Exercise {
	e.Note = &note
	return e
}

// WithMuscleGroup sets the muscle group label.
func (e *Exercise) WithMuscleGroup(g string) *Exercise {
	e.MuscleGroup = g
	return e
}

// DayWithExercises pairs a split day with its exercises in order.
type DayWithExercises struct {
	Day       *SplitDay
	Exercises []*Exercise
}

// SplitWithDays is a fully assembled split: days sorted by weekday,
// exercises sorted by order index.
type SplitWithDays struct {
	Split *Split
	Days  []*DayWithExercises
}
