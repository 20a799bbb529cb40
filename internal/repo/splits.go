// ABOUTME: Split, SplitDay, and Exercise CRUD with caller-driven cascades.
// ABOUTME: The store has no foreign keys; deletes run exercises, then days, then split.
package repo

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/codec"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

// CreateSplit stores a new split.
func (r *Repo) CreateSplit(s *models.Split) error {
	if err := r.store.Set(store.Splits, s.ID.String(), codec.EncodeSplit(s)); err != nil {
		return fmt.Errorf("create split: %w", err)
	}
	return nil
}

// GetSplit retrieves a split by id.
func (r *Repo) GetSplit(id uuid.UUID) (*models.Split, error) {
	doc, err := r.store.Get(store.Splits, id.String())
	if err != nil {
		return nil, fmt.Errorf("get split: %w", err)
	}
	s, err := codec.DecodeSplit(doc)
	if err != nil {
		return nil, fmt.Errorf("get split: %w", err)
	}
	return s, nil
}

// ListSplits returns the user's splits, most recent first.
func (r *Repo) ListSplits(userID uuid.UUID) ([]*models.Split, error) {
	docs, err := r.store.Query(store.Splits, "userId", userID.String())
	if err != nil {
		return nil, fmt.Errorf("list splits: %w", err)
	}

	splits := codec.DecodeAll(r.logger, docs, codec.DecodeSplit)
	sort.Slice(splits, func(i, j int) bool {
		return splits[i].CreatedAt.After(splits[j].CreatedAt)
	})
	return splits, nil
}

// RenameSplit updates the split's display name.
func (r *Repo) RenameSplit(id uuid.UUID, name string) error {
	err := r.store.Update(store.Splits, id.String(), store.Document{"name": name})
	if err != nil {
		return fmt.Errorf("rename split: %w", err)
	}
	return nil
}

// DeleteSplit removes a split and everything under it. The store has no
// transactional integrity: deletes are issued individually in dependency
// order (exercises, then days, then the split), and a failure part-way
// leaves the remainder in place.
func (r *Repo) DeleteSplit(id uuid.UUID) error {
	days, err := r.ListSplitDays(id)
	if err != nil {
		return fmt.Errorf("delete split: %w", err)
	}

	for _, day := range days {
		exercises, err := r.ListExercises(day.ID)
		if err != nil {
			return fmt.Errorf("delete split: %w", err)
		}
		for _, e := range exercises {
			if err := r.store.Delete(store.Exercises, e.ID.String()); err != nil {
				return fmt.Errorf("delete split: %w", err)
			}
		}
		if err := r.store.Delete(store.SplitDays, day.ID.String()); err != nil {
			return fmt.Errorf("delete split: %w", err)
		}
	}

	if err := r.store.Delete(store.Splits, id.String()); err != nil {
		return fmt.Errorf("delete split: %w", err)
	}
	return nil
}

// CreateSplitDay stores a new day in a split.
func (r *Repo) CreateSplitDay(day *models.SplitDay) error {
	if err := r.store.Set(store.SplitDays, day.ID.String(), codec.EncodeSplitDay(day)); err != nil {
		return fmt.Errorf("create split day: %w", err)
	}
	return nil
}

// ListSplitDays returns a split's days ordered by day of week.
func (r *Repo) ListSplitDays(splitID uuid.UUID) ([]*models.SplitDay, error) {
	docs, err := r.store.Query(store.SplitDays, "splitId", splitID.String())
	if err != nil {
		return nil, fmt.Errorf("list split days: %w", err)
	}

	days := codec.DecodeAll(r.logger, docs, codec.DecodeSplitDay)
	sort.Slice(days, func(i, j int) bool {
		return days[i].DayOfWeek < days[j].DayOfWeek
	})
	return days, nil
}

// GetSplitDay retrieves a day by id.
func (r *Repo) GetSplitDay(id uuid.UUID) (*models.SplitDay, error) {
	doc, err := r.store.Get(store.SplitDays, id.String())
	if err != nil {
		return nil, fmt.Errorf("get split day: %w", err)
	}
	day, err := codec.DecodeSplitDay(doc)
	if err != nil {
		return nil, fmt.Errorf("get split day: %w", err)
	}
	return day, nil
}

// CreateExercise stores a new exercise in a day.
func (r *Repo) CreateExercise(e *models.Exercise) error {
	if err := r.store.Set(store.Exercises, e.ID.String(), codec.EncodeExercise(e)); err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by id.
func (r *Repo) GetExercise(id uuid.UUID) (*models.Exercise, error) {
	doc, err := r.store.Get(store.Exercises, id.String())
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	e, err := codec.DecodeExercise(doc)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return e, nil
}

// ListExercises returns a day's exercises ordered by their order index.
func (r *Repo) ListExercises(splitDayID uuid.UUID) ([]*models.Exercise, error) {
	docs, err := r.store.Query(store.Exercises, "splitDayId", splitDayID.String())
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	exercises := codec.DecodeAll(r.logger, docs, codec.DecodeExercise)
	sort.Slice(exercises, func(i, j int) bool {
		return exercises[i].Order < exercises[j].Order
	})
	return exercises, nil
}

// NextExerciseOrder returns the next free 1-based order index in a day.
func (r *Repo) NextExerciseOrder(splitDayID uuid.UUID) (int, error) {
	exercises, err := r.ListExercises(splitDayID)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, e := range exercises {
		if e.Order > max {
			max = e.Order
		}
	}
	return max + 1, nil
}

// DeleteExercise removes a single exercise.
func (r *Repo) DeleteExercise(id uuid.UUID) error {
	if err := r.store.Delete(store.Exercises, id.String()); err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	return nil
}

// GetSplitWithDays assembles a split with its days and their exercises.
func (r *Repo) GetSplitWithDays(id uuid.UUID) (*models.SplitWithDays, error) {
	split, err := r.GetSplit(id)
	if err != nil {
		return nil, err
	}

	days, err := r.ListSplitDays(split.ID)
	if err != nil {
		return nil, err
	}

	out := &models.SplitWithDays{Split: split}
	for _, day := range days {
		exercises, err := r.ListExercises(day.ID)
		if err != nil {
			return nil, err
		}
		out.Days = append(out.Days, &models.DayWithExercises{Day: day, Exercises: exercises})
	}
	return out, nil
}
