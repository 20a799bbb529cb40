// ABOUTME: Shared CLI helpers: id-prefix resolution and formatting.
// ABOUTME: Prefixes resolve by walking the user's own entities.
package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/models"
)

// shortID returns the 8-character id prefix shown in listings.
func shortID(id uuid.UUID) string {
	return id.String()[:8]
}

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

// matchPrefix returns the single id matching idOrPrefix among
// candidates, or an error when none or several match.
func matchPrefix(idOrPrefix string, candidates []uuid.UUID) (uuid.UUID, error) {
	if id, err := uuid.Parse(idOrPrefix); err == nil {
		return id, nil
	}

	var matches []uuid.UUID
	for _, id := range candidates {
		if strings.HasPrefix(id.String(), idOrPrefix) {
			matches = append(matches, id)
		}
	}
	if len(matches) == 0 {
		return uuid.Nil, fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return uuid.Nil, fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}
	return matches[0], nil
}

// resolveSplitID resolves a split id or prefix within the user's splits.
func resolveSplitID(userID uuid.UUID, idOrPrefix string) (uuid.UUID, error) {
	splits, err := rp.ListSplits(userID)
	if err != nil {
		return uuid.Nil, err
	}
	ids := make([]uuid.UUID, len(splits))
	for i, s := range splits {
		ids[i] = s.ID
	}
	return matchPrefix(idOrPrefix, ids)
}

// resolveDayID resolves a split-day id or prefix across the user's splits.
func resolveDayID(userID uuid.UUID, idOrPrefix string) (uuid.UUID, error) {
	splits, err := rp.ListSplits(userID)
	if err != nil {
		return uuid.Nil, err
	}
	var ids []uuid.UUID
	for _, s := range splits {
		days, err := rp.ListSplitDays(s.ID)
		if err != nil {
			return uuid.Nil, err
		}
		for _, d := range days {
			ids = append(ids, d.ID)
		}
	}
	return matchPrefix(idOrPrefix, ids)
}

// resolveExerciseID resolves an exercise id or prefix across the user's
// splits.
func resolveExerciseID(userID uuid.UUID, idOrPrefix string) (uuid.UUID, error) {
	splits, err := rp.ListSplits(userID)
	if err != nil {
		return uuid.Nil, err
	}
	var ids []uuid.UUID
	for _, s := range splits {
		days, err := rp.ListSplitDays(s.ID)
		if err != nil {
			return uuid.Nil, err
		}
		for _, d := range days {
			exercises, err := rp.ListExercises(d.ID)
			if err != nil {
				return uuid.Nil, err
			}
			for _, e := range exercises {
				ids = append(ids, e.ID)
			}
		}
	}
	return matchPrefix(idOrPrefix, ids)
}

// resolveSessionID resolves a session id or prefix within the user's
// sessions.
func resolveSessionID(userID uuid.UUID, idOrPrefix string) (uuid.UUID, error) {
	sessions, err := rp.ListSessions(userID, 0)
	if err != nil {
		return uuid.Nil, err
	}
	ids := make([]uuid.UUID, len(sessions))
	for i, s := range sessions {
		ids[i] = s.ID
	}
	return matchPrefix(idOrPrefix, ids)
}

// resolvePhotoID resolves a photo id or prefix within the user's photos.
func resolvePhotoID(userID uuid.UUID, idOrPrefix string) (uuid.UUID, error) {
	photos, err := rp.ListPhotos(userID)
	if err != nil {
		return uuid.Nil, err
	}
	ids := make([]uuid.UUID, len(photos))
	for i, p := range photos {
		ids[i] = p.ID
	}
	return matchPrefix(idOrPrefix, ids)
}

// dayLabel renders a split day for listings.
func dayLabel(d *models.SplitDay) string {
	if d.IsRestDay {
		return fmt.Sprintf("day %d  %s (rest)", d.DayOfWeek, d.Name)
	}
	return fmt.Sprintf("day %d  %s", d.DayOfWeek, d.Name)
}
