// ABOUTME: User and ProgressPhoto models for account and progress tracking.
// ABOUTME: Users own splits, sessions, and photos; all ids are writer-generated UUIDs.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	CreatedAt   time.Time
}

// NewUser creates a new User with generated UUID and current timestamp.
func NewUser(email, displayName string) *User {
	return &User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
}

// ProgressPhoto represents a dated progress picture with optional measurements.
type ProgressPhoto struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ImageRef  string
	Weight    *float64
	Notes     *string
	Date      time.Time // calendar date, midnight UTC
	CreatedAt time.Time
}

// NewProgressPhoto creates a photo entry dated today.
func NewProgressPhoto(userID uuid.UUID, imageRef string) *ProgressPhoto {
	now := time.Now()
	return &ProgressPhoto{
		ID:        uuid.New(),
		UserID:    userID,
		ImageRef:  imageRef,
		Date:      DateOf(now),
		CreatedAt: now,
	}
}

// WithWeight records a body weight alongside the photo.
func (p *ProgressPhoto) WithWeight(kg float64) *ProgressPhoto {
	p.Weight = &kg
	return p
}

// WithNotes sets notes on the photo.
func (p *ProgressPhoto) WithNotes(notes string) *ProgressPhoto {
	p.Notes = &notes
	return p
}

// WithDate sets a custom calendar date.
func (p *ProgressPhoto) WithDate(t time.Time) *ProgressPhoto {
	p.Date = DateOf(t)
	return p
}
