// ABOUTME: Template instantiation: expands a routine template into a user's split.
// ABOUTME: Runs as an ordered write saga with no compensation on partial failure.
package routine

import (
	"fmt"
	"sort"

	"github.com/splitfitapp/splitfit/internal/auth"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/repo"
	"github.com/splitfitapp/splitfit/internal/store"
)

// Engine instantiates catalog templates into concrete per-user splits.
type Engine struct {
	catalog  Catalog
	repo     *repo.Repo
	identity auth.Identity
}

// NewEngine creates an instantiation engine over the given catalog.
func NewEngine(catalog Catalog, r *repo.Repo, identity auth.Identity) *Engine {
	return &Engine{catalog: catalog, repo: r, identity: identity}
}

// Catalog returns the engine's template catalog.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// writeStep is one store write in the instantiation saga.
type writeStep struct {
	desc string
	run  func() error
}

// Instantiate expands the named template into a new split owned by the
// current user. dayAssignments maps a day-of-week to the routine name
// that should fill it; names that match no day template, or match a
// rest day template, become rest days carrying the assignment's name.
//
// Writes run in order: split, then each day followed by its exercises.
// The first store failure aborts the run and propagates; rows already
// written are not rolled back, so a retry creates a second split.
func (e *Engine) Instantiate(templateName, splitName string, dayAssignments map[int]string) (*models.SplitWithDays, error) {
	acct, err := e.identity.CurrentUser()
	if err != nil {
		return nil, err
	}

	tmpl, ok := e.catalog.Find(templateName)
	if !ok {
		return nil, fmt.Errorf("template %q: %w", templateName, store.ErrNotFound)
	}

	split := models.NewSplit(acct.UserID, splitName)
	steps := []writeStep{{
		desc: "create split",
		run:  func() error { return e.repo.CreateSplit(split) },
	}}

	result := &models.SplitWithDays{Split: split}
	for dayOfWeek, routineName := range dayAssignments {
		dayTmpl, found := tmpl.findDay(routineName)

		if !found || dayTmpl.Rest {
			day := models.NewRestDay(split.ID, dayOfWeek, routineName)
			steps = append(steps, writeStep{
				desc: "create rest day",
				run:  func() error { return e.repo.CreateSplitDay(day) },
			})
			result.Days = append(result.Days, &models.DayWithExercises{Day: day})
			continue
		}

		day := models.NewSplitDay(split.ID, dayOfWeek, dayTmpl.Name)
		steps = append(steps, writeStep{
			desc: "create day",
			run:  func() error { return e.repo.CreateSplitDay(day) },
		})

		withEx := &models.DayWithExercises{Day: day}
		for i, exTmpl := range dayTmpl.Exercises {
			ex := models.NewExercise(day.ID, exTmpl.Name, i+1).
				WithDefaultSets(exTmpl.Sets).
				WithRestSeconds(exTmpl.RestSeconds).
				WithMuscleGroup(exTmpl.MuscleGroup)
			steps = append(steps, writeStep{
				desc: "create exercise",
				run:  func() error { return e.repo.CreateExercise(ex) },
			})
			withEx.Exercises = append(withEx.Exercises, ex)
		}
		result.Days = append(result.Days, withEx)
	}

	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("instantiate %s: %w", step.desc, err)
		}
	}

	// The result reflects what was written, re-sorted by weekday for
	// presentation; map iteration order decided the write order.
	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].Day.DayOfWeek < result.Days[j].Day.DayOfWeek
	})
	return result, nil
}
