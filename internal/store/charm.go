// ABOUTME: Charm KV-backed document store with automatic cloud sync.
// ABOUTME: Same key scheme as the Badger backend; data is E2E encrypted by Charm.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"
)

const (
	charmDBName = "splitfit"
	charmHost   = "charm.2389.dev"
)

var (
	globalCharm *CharmStore
	charmOnce   sync.Once
	charmErr    error
)

// CharmStore implements Store on top of Charm KV. Writes sync to Charm
// Cloud automatically unless disabled.
type CharmStore struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

var _ Store = (*CharmStore)(nil)

// OpenCharm initializes the process-wide Charm store.
// Thread-safe; can be called multiple times.
func OpenCharm() (*CharmStore, error) {
	charmOnce.Do(func() {
		// Set server before opening KV
		if err := os.Setenv("CHARM_HOST", charmHost); err != nil {
			charmErr = err
			return
		}

		db, err := kv.OpenWithDefaultsFallback(charmDBName)
		if err != nil {
			charmErr = err
			return
		}

		globalCharm = &CharmStore{kv: db, autoSync: true}

		// Pull remote data on startup (skip in read-only mode)
		if !db.IsReadOnly() {
			_ = db.Sync()
		}
	})
	return globalCharm, charmErr
}

// Close closes the KV database connection.
func (s *CharmStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv != nil {
		return s.kv.Close()
	}
	return nil
}

// IsReadOnly returns true if the database is open in read-only mode,
// which happens when another process (like an MCP server) holds the lock.
func (s *CharmStore) IsReadOnly() bool {
	return s.kv.IsReadOnly()
}

// Sync synchronizes local state with Charm Cloud.
func (s *CharmStore) Sync() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.kv.IsReadOnly() {
		return nil
	}
	return s.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (s *CharmStore) SetAutoSync(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoSync = enabled
}

// AccountID returns the Charm user ID for the current account.
func (s *CharmStore) AccountID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

// Reset wipes local data and rebuilds from Charm Cloud.
func (s *CharmStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Reset()
}

func (s *CharmStore) syncIfEnabled() {
	if s.autoSync && !s.kv.IsReadOnly() {
		_ = s.kv.Sync()
	}
}

// Set creates or overwrites the whole document.
func (s *CharmStore) Set(collection, id string, fields Document) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := s.kv.Set(key(collection, id), data); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	s.syncIfEnabled()
	return nil
}

// Get returns the document or ErrNotFound.
func (s *CharmStore) Get(collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, err := s.kv.Get(key(collection, id))
	if err != nil || data == nil {
		return nil, ErrNotFound
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Query scans the collection prefix and returns documents whose field
// equals value.
func (s *CharmStore) Query(collection, field string, value any) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefix := []byte(collection + ":")
	keys, err := s.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}

	var results []Document
	for _, k := range keys {
		if !bytes.HasPrefix(k, prefix) {
			continue
		}
		data, err := s.kv.Get(k)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", collection, err)
		}
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		if fieldEquals(doc[field], value) {
			results = append(results, doc)
		}
	}
	return results, nil
}

// Update merges partial fields into an existing document.
func (s *CharmStore) Update(collection, id string, partial Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}

	data, err := s.kv.Get(key(collection, id))
	if err != nil || data == nil {
		return ErrNotFound
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unmarshal %s/%s: %w", collection, id, err)
	}
	for f, v := range partial {
		doc[f] = v
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s/%s: %w", collection, id, err)
	}
	if err := s.kv.Set(key(collection, id), merged); err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	s.syncIfEnabled()
	return nil
}

// Delete removes the document. Absent ids are not an error.
func (s *CharmStore) Delete(collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.kv.IsReadOnly() {
		return fmt.Errorf("cannot write: database is locked by another process")
	}
	if err := s.kv.Delete(key(collection, id)); err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	s.syncIfEnabled()
	return nil
}
