// ABOUTME: Export and import of a user's full training data.
// ABOUTME: JSON snapshot of splits, sessions, sets, and photos.
package repo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/models"
)

// ExportData is the full export format for one user's data.
type ExportData struct {
	Version    string                  `json:"version"`
	ExportedAt time.Time               `json:"exported_at"`
	Tool       string                  `json:"tool"`
	Splits     []*models.SplitWithDays `json:"splits"`
	Sessions   []*models.Session       `json:"sessions"`
	Sets       []*models.WorkoutSet    `json:"sets"`
	Photos     []*models.ProgressPhoto `json:"photos"`
}

// GetAllData retrieves everything the user owns for export.
func (r *Repo) GetAllData(userID uuid.UUID) (*ExportData, error) {
	splits, err := r.ListSplits(userID)
	if err != nil {
		return nil, fmt.Errorf("export splits: %w", err)
	}

	out := &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "splitfit",
	}

	for _, s := range splits {
		full, err := r.GetSplitWithDays(s.ID)
		if err != nil {
			return nil, fmt.Errorf("export split %s: %w", s.ID, err)
		}
		out.Splits = append(out.Splits, full)
	}

	sessions, err := r.ListSessions(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("export sessions: %w", err)
	}
	out.Sessions = sessions

	for _, sess := range sessions {
		sets, err := r.ListSessionSets(sess.ID)
		if err != nil {
			return nil, fmt.Errorf("export sets for session %s: %w", sess.ID, err)
		}
		out.Sets = append(out.Sets, sets...)
	}

	photos, err := r.ListPhotos(userID)
	if err != nil {
		return nil, fmt.Errorf("export photos: %w", err)
	}
	out.Photos = photos

	return out, nil
}

// ImportData writes an export snapshot into the store, keeping the
// original ids. Importing the same snapshot twice overwrites in place.
func (r *Repo) ImportData(data *ExportData) error {
	for _, full := range data.Splits {
		if err := r.CreateSplit(full.Split); err != nil {
			return fmt.Errorf("import split: %w", err)
		}
		for _, day := range full.Days {
			if err := r.CreateSplitDay(day.Day); err != nil {
				return fmt.Errorf("import split day: %w", err)
			}
			for _, e := range day.Exercises {
				if err := r.CreateExercise(e); err != nil {
					return fmt.Errorf("import exercise: %w", err)
				}
			}
		}
	}

	for _, sess := range data.Sessions {
		if err := r.CreateSession(sess); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	for _, ws := range data.Sets {
		if err := r.CreateWorkoutSet(ws); err != nil {
			return fmt.Errorf("import set: %w", err)
		}
	}
	for _, p := range data.Photos {
		if err := r.CreatePhoto(p); err != nil {
			return fmt.Errorf("import photo: %w", err)
		}
	}
	return nil
}
