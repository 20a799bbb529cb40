// ABOUTME: Badger-backed document store, the default local backend.
// ABOUTME: Keys are collection-prefixed ids; values are JSON documents.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v3"
)

// BadgerStore implements Store on top of a local Badger database.
type BadgerStore struct {
	db *badger.DB
}

var _ Store = (*BadgerStore)(nil)

// OpenBadger opens or creates a Badger database rooted at dir.
func OpenBadger(dir string) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "splitfit")
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func key(collection, id string) []byte {
	return []byte(collection + ":" + id)
}

// Set creates or overwrites the whole document.
func (s *BadgerStore) Set(collection, id string, fields Document) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(collection, id), data)
	})
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Get returns the document or ErrNotFound.
func (s *BadgerStore) Get(collection, id string) (Document, error) {
	var doc Document
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(collection, id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s/%s: %w", collection, id, err)
	}
	return doc, nil
}

// Query scans the collection prefix and returns documents whose field
// equals value.
func (s *BadgerStore) Query(collection, field string, value any) ([]Document, error) {
	var results []Document
	prefix := []byte(collection + ":")

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if !bytes.HasPrefix(it.Item().Key(), prefix) {
				continue
			}
			var doc Document
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &doc)
			})
			if err != nil {
				return err
			}
			if fieldEquals(doc[field], value) {
				results = append(results, doc)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", collection, field, err)
	}
	return results, nil
}

// Update merges partial fields into an existing document.
func (s *BadgerStore) Update(collection, id string, partial Document) error {
	k := key(collection, id)
	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(k)
		if err != nil {
			return err
		}
		var doc Document
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		}); err != nil {
			return err
		}
		for f, v := range partial {
			doc[f] = v
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		return txn.Set(k, data)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes the document. Absent ids are not an error.
func (s *BadgerStore) Delete(collection, id string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key(collection, id))
	})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	return nil
}

// fieldEquals compares a stored field against a query value, tolerating
// the numeric widening JSON round-trips introduce.
func fieldEquals(stored, value any) bool {
	if stored == value {
		return true
	}
	sf, sok := toFloat(stored)
	vf, vok := toFloat(value)
	return sok && vok && sf == vf
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
