// ABOUTME: Progress aggregation engine: streaks, volume, favorite exercise.
// ABOUTME: Reads recent sessions and their sets; all math happens client-side.
package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/auth"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/repo"
	"github.com/splitfitapp/splitfit/internal/store"
)

const (
	// sessionFetchCap bounds how much history feeds the stats.
	sessionFetchCap = 100

	// placeholderDuration stands in until sessions carry enough timing
	// data to compute a real average.
	placeholderDuration = 45 * time.Minute
)

// Engine computes derived statistics for the authenticated user.
type Engine struct {
	repo     *repo.Repo
	identity auth.Identity
	now      func() time.Time
}

// NewEngine creates a stats engine over the repository and identity
// provider.
func NewEngine(r *repo.Repo, identity auth.Identity) *Engine {
	return &Engine{repo: r, identity: identity, now: time.Now}
}

// ComputeProgressStats aggregates the user's recent training history.
// Fails with auth.ErrUnauthenticated before touching the store when no
// user is logged in; any store failure propagates with no partial stats.
func (e *Engine) ComputeProgressStats() (*models.ProgressStats, error) {
	acct, err := e.identity.CurrentUser()
	if err != nil {
		return nil, err
	}

	sessions, err := e.repo.ListSessions(acct.UserID, sessionFetchCap)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	out := &models.ProgressStats{
		TotalWorkouts:   len(sessions),
		CurrentStreak:   currentStreak(sessions, models.DateOf(e.now())),
		AverageDuration: placeholderDuration,
	}
	// Longest streak mirrors the current one. Tracking the true
	// historical longest is pending product clarification.
	out.LongestStreak = out.CurrentStreak

	var totalVolume float64
	perExercise := make(map[uuid.UUID]float64)
	var firstSeen []uuid.UUID

	for _, s := range sessions {
		sets, err := e.repo.ListSessionSets(s.ID)
		if err != nil {
			return nil, fmt.Errorf("compute stats: %w", err)
		}
		for _, ws := range sets {
			v := ws.Volume()
			totalVolume += v
			if _, seen := perExercise[ws.ExerciseID]; !seen {
				firstSeen = append(firstSeen, ws.ExerciseID)
			}
			perExercise[ws.ExerciseID] += v
		}
	}
	out.TotalVolume = totalVolume

	// Favorite exercise: highest accumulated volume; ties go to the
	// exercise seen first.
	best := -1.0
	for _, id := range firstSeen {
		if perExercise[id] > best {
			best = perExercise[id]
			fav := id
			out.FavoriteExercise = &fav
		}
	}

	return out, nil
}

// currentStreak walks date-descending sessions from today. A session on
// the cursor date extends the streak; the streak may also begin
// yesterday. The first gap stops the walk, so this is the current
// streak only, not the longest historical one.
func currentStreak(sessions []*models.Session, today time.Time) int {
	streak := 0
	cursor := today
	for _, s := range sessions {
		d := models.DateOf(s.Date)
		switch {
		case d.Equal(cursor):
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		case streak == 0 && d.Equal(cursor.AddDate(0, 0, -1)):
			streak = 1
			cursor = d.AddDate(0, 0, -1)
		default:
			return streak
		}
	}
	return streak
}

// ExerciseProgress summarizes history for one exercise, or returns
// (nil, nil) when the exercise has no recorded sets. MaxWeight and
// MaxReps are independent maxima and may come from different sets.
func (e *Engine) ExerciseProgress(exerciseID uuid.UUID) (*models.ExerciseProgress, error) {
	sets, err := e.repo.ListExerciseSets(exerciseID)
	if err != nil {
		return nil, fmt.Errorf("exercise progress: %w", err)
	}
	if len(sets) == 0 {
		return nil, nil
	}

	out := &models.ExerciseProgress{ExerciseID: exerciseID}
	seen := make(map[uuid.UUID]bool)
	for _, ws := range sets {
		if ws.Weight > out.MaxWeight {
			out.MaxWeight = ws.Weight
		}
		if ws.Reps > out.MaxReps {
			out.MaxReps = ws.Reps
		}
		out.TotalVolume += ws.Volume()

		if seen[ws.SessionID] {
			continue
		}
		seen[ws.SessionID] = true
		sess, err := e.repo.GetSession(ws.SessionID)
		if errors.Is(err, store.ErrNotFound) {
			// Orphaned set; its session was deleted out from under it.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("exercise progress: %w", err)
		}
		if sess.Date.After(out.LastPerformed) {
			out.LastPerformed = sess.Date
		}
	}
	return out, nil
}
