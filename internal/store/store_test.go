// ABOUTME: Tests for the document store implementations.
// ABOUTME: Runs the same contract checks against the memory and Badger backends.
package store

import (
	"errors"
	"testing"
)

// backends under test; charm is excluded because it needs a linked account.
func testStores(t *testing.T) map[string]Store {
	t.Helper()
	badgerStore, err := OpenBadger(t.TempDir())
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	t.Cleanup(func() { badgerStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": badgerStore,
	}
}

func TestSetAndGet(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			doc := Document{"id": "abc", "name": "Push", "dayOfWeek": int64(1)}
			if err := s.Set(SplitDays, "abc", doc); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, err := s.Get(SplitDays, "abc")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got["name"] != "Push" {
				t.Errorf("name = %v, want Push", got["name"])
			}
		})
	}
}

func TestGetMissing(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(Splits, "nope")
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestQueryByField(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			docs := []Document{
				{"id": "a", "splitId": "s1", "name": "Push"},
				{"id": "b", "splitId": "s1", "name": "Pull"},
				{"id": "c", "splitId": "s2", "name": "Legs"},
			}
			for _, d := range docs {
				if err := s.Set(SplitDays, d["id"].(string), d); err != nil {
					t.Fatalf("Set failed: %v", err)
				}
			}

			got, err := s.Query(SplitDays, "splitId", "s1")
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("expected 2 documents, got %d", len(got))
			}
		})
	}
}

func TestQueryDoesNotCrossCollections(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(Splits, "x", Document{"id": "x", "userId": "u1"}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Set(Sessions, "y", Document{"id": "y", "userId": "u1"}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, err := s.Query(Splits, "userId", "u1")
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(got) != 1 {
				t.Errorf("expected 1 document, got %d", len(got))
			}
		})
	}
}

func TestQueryNumericWidening(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			// dayOfWeek is written as int64 but comes back as float64
			// after a JSON round trip.
			if err := s.Set(SplitDays, "d", Document{"id": "d", "dayOfWeek": int64(3)}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			got, err := s.Query(SplitDays, "dayOfWeek", int64(3))
			if err != nil {
				t.Fatalf("Query failed: %v", err)
			}
			if len(got) != 1 {
				t.Errorf("expected 1 document, got %d", len(got))
			}
		})
	}
}

func TestUpdateMergesPartial(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			doc := Document{"id": "s", "completed": false, "date": int64(20000)}
			if err := s.Set(Sessions, "s", doc); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			err := s.Update(Sessions, "s", Document{"completed": true, "completedAt": int64(1756555200)})
			if err != nil {
				t.Fatalf("Update failed: %v", err)
			}

			got, err := s.Get(Sessions, "s")
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}
			if got["completed"] != true {
				t.Errorf("completed = %v, want true", got["completed"])
			}
			if _, ok := got["date"]; !ok {
				t.Error("untouched field was dropped by partial update")
			}
		})
	}
}

func TestUpdateMissing(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			err := s.Update(Sessions, "nope", Document{"completed": true})
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound, got %v", err)
			}
		})
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	for name, s := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(Sets, "w", Document{"id": "w"}); err != nil {
				t.Fatalf("Set failed: %v", err)
			}
			if err := s.Delete(Sets, "w"); err != nil {
				t.Fatalf("Delete failed: %v", err)
			}
			// Deleting again is not an error.
			if err := s.Delete(Sets, "w"); err != nil {
				t.Errorf("second Delete failed: %v", err)
			}
			if _, err := s.Get(Sets, "w"); !errors.Is(err, ErrNotFound) {
				t.Errorf("expected ErrNotFound after delete, got %v", err)
			}
		})
	}
}

func TestMemoryStoreFailSet(t *testing.T) {
	s := NewMemoryStore()
	s.FailSet = func(collection, id string) error {
		if collection == Exercises {
			return errors.New("disk full")
		}
		return nil
	}

	if err := s.Set(Splits, "a", Document{"id": "a"}); err != nil {
		t.Fatalf("Set splits failed: %v", err)
	}
	if err := s.Set(Exercises, "b", Document{"id": "b"}); err == nil {
		t.Fatal("expected injected failure")
	}
	if _, err := s.Get(Exercises, "b"); !errors.Is(err, ErrNotFound) {
		t.Error("failed write should not be visible")
	}
}

func TestMemoryStoreClonesResults(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Set(Splits, "a", Document{"id": "a", "name": "PPL"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, _ := s.Get(Splits, "a")
	got["name"] = "mutated"

	again, _ := s.Get(Splits, "a")
	if again["name"] != "PPL" {
		t.Errorf("store internals aliased by caller mutation: name = %v", again["name"])
	}
}

func TestBadgerPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	if err := s.Set(Splits, "a", Document{"id": "a", "name": "PPL"}); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s2, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s2.Close()

	got, err := s2.Get(Splits, "a")
	if err != nil {
		t.Fatalf("Get after reopen failed: %v", err)
	}
	if got["name"] != "PPL" {
		t.Errorf("name = %v, want PPL", got["name"])
	}
}
