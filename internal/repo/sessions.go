// ABOUTME: Session, WorkoutSet, and ProgressPhoto CRUD.
// ABOUTME: Sessions are mutated exactly once, via a partial update marking completion.
package repo

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/codec"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

// CreateSession stores a new open session.
func (r *Repo) CreateSession(s *models.Session) error {
	if err := r.store.Set(store.Sessions, s.ID.String(), codec.EncodeSession(s)); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by id.
func (r *Repo) GetSession(id uuid.UUID) (*models.Session, error) {
	doc, err := r.store.Get(store.Sessions, id.String())
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	s, err := codec.DecodeSession(doc)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return s, nil
}

// ListSessions returns the user's sessions, most recent date first.
// A limit of 0 means no cap.
func (r *Repo) ListSessions(userID uuid.UUID, limit int) ([]*models.Session, error) {
	docs, err := r.store.Query(store.Sessions, "userId", userID.String())
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sessions := codec.DecodeAll(r.logger, docs, codec.DecodeSession)
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.After(sessions[j].Date)
		}
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// CompleteSession marks a session finished at the given time.
func (r *Repo) CompleteSession(id uuid.UUID, at time.Time) error {
	partial := store.Document{
		"completed":   true,
		"completedAt": at.Unix(),
	}
	if err := r.store.Update(store.Sessions, id.String(), partial); err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	return nil
}

// CreateWorkoutSet stores a set record. Sets are immutable once written.
func (r *Repo) CreateWorkoutSet(ws *models.WorkoutSet) error {
	if err := r.store.Set(store.Sets, ws.ID.String(), codec.EncodeWorkoutSet(ws)); err != nil {
		return fmt.Errorf("create set: %w", err)
	}
	return nil
}

// ListSessionSets returns a session's sets ordered by set number.
func (r *Repo) ListSessionSets(sessionID uuid.UUID) ([]*models.WorkoutSet, error) {
	docs, err := r.store.Query(store.Sets, "sessionId", sessionID.String())
	if err != nil {
		return nil, fmt.Errorf("list session sets: %w", err)
	}

	sets := codec.DecodeAll(r.logger, docs, codec.DecodeWorkoutSet)
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].SetNumber < sets[j].SetNumber
	})
	return sets, nil
}

// ListExerciseSets returns every recorded set for one exercise across
// all sessions, in no particular order.
func (r *Repo) ListExerciseSets(exerciseID uuid.UUID) ([]*models.WorkoutSet, error) {
	docs, err := r.store.Query(store.Sets, "exerciseId", exerciseID.String())
	if err != nil {
		return nil, fmt.Errorf("list exercise sets: %w", err)
	}
	return codec.DecodeAll(r.logger, docs, codec.DecodeWorkoutSet), nil
}

// NextSetNumber returns the next 1-based set number for an exercise
// within a session.
func (r *Repo) NextSetNumber(sessionID, exerciseID uuid.UUID) (int, error) {
	sets, err := r.ListSessionSets(sessionID)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, ws := range sets {
		if ws.ExerciseID == exerciseID && ws.SetNumber > max {
			max = ws.SetNumber
		}
	}
	return max + 1, nil
}

// CreatePhoto stores a progress photo entry.
func (r *Repo) CreatePhoto(p *models.ProgressPhoto) error {
	if err := r.store.Set(store.ProgressPhotos, p.ID.String(), codec.EncodeProgressPhoto(p)); err != nil {
		return fmt.Errorf("create photo: %w", err)
	}
	return nil
}

// ListPhotos returns the user's progress photos, most recent date first.
func (r *Repo) ListPhotos(userID uuid.UUID) ([]*models.ProgressPhoto, error) {
	docs, err := r.store.Query(store.ProgressPhotos, "userId", userID.String())
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}

	photos := codec.DecodeAll(r.logger, docs, codec.DecodeProgressPhoto)
	sort.Slice(photos, func(i, j int) bool {
		return photos[i].Date.After(photos[j].Date)
	})
	return photos, nil
}

// DeletePhoto removes a progress photo entry.
func (r *Repo) DeletePhoto(id uuid.UUID) error {
	if err := r.store.Delete(store.ProgressPhotos, id.String()); err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	return nil
}
