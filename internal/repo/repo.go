// ABOUTME: Repository wrapping the document store with entity codecs.
// ABOUTME: Owns user CRUD; splits and sessions live in sibling files.
package repo

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/codec"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

// Repo provides typed CRUD over the document store. List reads are
// fail-soft: malformed documents are skipped and logged.
type Repo struct {
	store  store.Store
	logger *log.Logger
}

// New creates a repository over the given store. A nil logger falls
// back to the package default.
func New(s store.Store, logger *log.Logger) *Repo {
	if logger == nil {
		logger = log.Default()
	}
	return &Repo{store: s, logger: logger}
}

// Store exposes the underlying document store.
func (r *Repo) Store() store.Store {
	return r.store
}

// UpsertUser creates or overwrites the user document.
func (r *Repo) UpsertUser(u *models.User) error {
	if err := r.store.Set(store.Users, u.ID.String(), codec.EncodeUser(u)); err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by id.
func (r *Repo) GetUser(id uuid.UUID) (*models.User, error) {
	doc, err := r.store.Get(store.Users, id.String())
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u, err := codec.DecodeUser(doc)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// FindUserByEmail returns the user with the given email, or ErrNotFound.
func (r *Repo) FindUserByEmail(email string) (*models.User, error) {
	docs, err := r.store.Query(store.Users, "email", email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	users := codec.DecodeAll(r.logger, docs, codec.DecodeUser)
	if len(users) == 0 {
		return nil, store.ErrNotFound
	}
	return users[0], nil
}
