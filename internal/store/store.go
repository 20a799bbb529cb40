// ABOUTME: Document store contract for splitfit data.
// ABOUTME: Key-value collections with equality queries; ordering is the caller's job.
package store

import "errors"

// Collection names. One document collection per entity kind.
const (
	Users          = "users"
	Splits         = "splits"
	SplitDays      = "split_days"
	Exercises      = "exercises"
	Sessions       = "sessions"
	Sets           = "sets"
	ProgressPhotos = "progress_photos"
)

// ErrNotFound is returned when a document or referenced entity is absent.
var ErrNotFound = errors.New("not found")

// Document is a flat field map as persisted. Timestamps are epoch seconds,
// calendar dates epoch days, ids plain strings.
type Document map[string]any

// Store is the document store consumed by repositories and engines.
// Implementations provide no sorted or composite queries; callers filter
// by a single field equality and order results themselves.
type Store interface {
	// Set creates or overwrites the whole document.
	Set(collection, id string, fields Document) error
	// Get returns the document or ErrNotFound.
	Get(collection, id string) (Document, error)
	// Query returns all documents whose field equals value, in no
	// particular order.
	Query(collection, field string, value any) ([]Document, error)
	// Update merges partial fields into an existing document.
	// Returns ErrNotFound if the document does not exist.
	Update(collection, id string, partial Document) error
	// Delete removes the document. Deleting an absent id is not an error.
	Delete(collection, id string) error

	Close() error
}

// Clone returns a shallow copy of a document so callers can mutate
// results without aliasing store internals.
func Clone(d Document) Document {
	c := make(Document, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}
