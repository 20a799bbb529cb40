// ABOUTME: Data migration between splitfit storage backends.
// ABOUTME: Copies a user's splits, sessions, sets, and photos from source to destination.
package repo

import (
	"fmt"

	"github.com/google/uuid"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Splits    int
	Days      int
	Exercises int
	Sessions  int
	Sets      int
	Photos    int
}

// MigrateData copies all of a user's data from src to dst. Ids are
// preserved, so re-running a migration overwrites rather than
// duplicates. The destination should normally be empty.
func MigrateData(src, dst *Repo, userID uuid.UUID) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	user, err := src.GetUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load source user: %w", err)
	}
	if err := dst.UpsertUser(user); err != nil {
		return nil, fmt.Errorf("migrate user: %w", err)
	}

	data, err := src.GetAllData(userID)
	if err != nil {
		return nil, fmt.Errorf("load source data: %w", err)
	}
	if err := dst.ImportData(data); err != nil {
		return nil, err
	}

	summary.Splits = len(data.Splits)
	for _, full := range data.Splits {
		summary.Days += len(full.Days)
		for _, day := range full.Days {
			summary.Exercises += len(day.Exercises)
		}
	}
	summary.Sessions = len(data.Sessions)
	summary.Sets = len(data.Sets)
	summary.Photos = len(data.Photos)

	return summary, nil
}
