// ABOUTME: Tests for entity codecs and fail-soft batch decoding.
// ABOUTME: Covers epoch encodings, required-field errors, and timestamp fallbacks.
package codec

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

// jsonRoundTrip simulates the store's JSON persistence, which widens all
// numbers to float64.
func jsonRoundTrip(t *testing.T, d store.Document) store.Document {
	t.Helper()
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var out store.Document
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return out
}

func TestSessionRoundTrip(t *testing.T) {
	s := models.NewSession(uuid.New(), uuid.New())
	s.WithDate(time.Date(2026, 8, 30, 14, 0, 0, 0, time.UTC))
	s.MarkCompleted(time.Unix(1756555200, 0))

	got, err := DecodeSession(jsonRoundTrip(t, EncodeSession(s)))
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}

	if got.ID != s.ID {
		t.Errorf("ID = %v, want %v", got.ID, s.ID)
	}
	if got.UserID != s.UserID {
		t.Errorf("UserID = %v, want %v", got.UserID, s.UserID)
	}
	want := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	if !got.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", got.Date, want)
	}
	if !got.Completed {
		t.Error("expected Completed to survive the round trip")
	}
	if got.CompletedAt == nil || got.CompletedAt.Unix() != 1756555200 {
		t.Errorf("CompletedAt = %v, want epoch 1756555200", got.CompletedAt)
	}
}

func TestSessionDateEncodesAsEpochDays(t *testing.T) {
	s := models.NewSession(uuid.New(), uuid.New())
	s.WithDate(time.Date(1970, 1, 3, 0, 0, 0, 0, time.UTC))

	doc := EncodeSession(s)
	if doc["date"] != int64(2) {
		t.Errorf("date = %v, want 2 (epoch days)", doc["date"])
	}
}

func TestDecodeSessionMissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		strip string
	}{
		{"missing id", "id"},
		{"missing userId", "userId"},
		{"missing splitDayId", "splitDayId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := EncodeSession(models.NewSession(uuid.New(), uuid.New()))
			delete(doc, tt.strip)

			_, err := DecodeSession(doc)
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
			if de.Field != tt.strip {
				t.Errorf("Field = %s, want %s", de.Field, tt.strip)
			}
		})
	}
}

func TestDecodeUserMissingCreatedAtFallsBackToNow(t *testing.T) {
	doc := store.Document{
		"id":    uuid.New().String(),
		"email": "you@example.com",
	}

	before := time.Now().Add(-time.Minute)
	u, err := DecodeUser(doc)
	if err != nil {
		t.Fatalf("DecodeUser failed: %v", err)
	}
	if u.CreatedAt.Before(before) {
		t.Errorf("CreatedAt = %v, expected fallback near now", u.CreatedAt)
	}
}

func TestDecodeSessionMissingDateFallsBackToToday(t *testing.T) {
	doc := EncodeSession(models.NewSession(uuid.New(), uuid.New()))
	delete(doc, "date")

	s, err := DecodeSession(doc)
	if err != nil {
		t.Fatalf("DecodeSession failed: %v", err)
	}
	if !s.Date.Equal(models.DateOf(time.Now())) {
		t.Errorf("Date = %v, want today", s.Date)
	}
}

func TestExerciseRoundTrip(t *testing.T) {
	e := models.NewExercise(uuid.New(), "Bench Press", 2).
		WithDefaultSets(4).
		WithRestSeconds(180).
		WithNote("touch and go").
		WithMuscleGroup("chest")

	got, err := DecodeExercise(jsonRoundTrip(t, EncodeExercise(e)))
	if err != nil {
		t.Fatalf("DecodeExercise failed: %v", err)
	}

	if got.Order != 2 {
		t.Errorf("Order = %d, want 2", got.Order)
	}
	if got.DefaultSets != 4 {
		t.Errorf("DefaultSets = %d, want 4", got.DefaultSets)
	}
	if got.RestSeconds != 180 {
		t.Errorf("RestSeconds = %d, want 180", got.RestSeconds)
	}
	if got.Note == nil || *got.Note != "touch and go" {
		t.Errorf("Note = %v, want 'touch and go'", got.Note)
	}
}

func TestExerciseOptionalNoteAbsent(t *testing.T) {
	e := models.NewExercise(uuid.New(), "Plank", 1)

	doc := EncodeExercise(e)
	if _, ok := doc["note"]; ok {
		t.Error("nil note should not be encoded")
	}

	got, err := DecodeExercise(doc)
	if err != nil {
		t.Fatalf("DecodeExercise failed: %v", err)
	}
	if got.Note != nil {
		t.Errorf("Note = %v, want nil", got.Note)
	}
}

func TestProgressPhotoRoundTrip(t *testing.T) {
	p := models.NewProgressPhoto(uuid.New(), "pics/front.jpg").
		WithWeight(81.2).
		WithDate(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))

	got, err := DecodeProgressPhoto(jsonRoundTrip(t, EncodeProgressPhoto(p)))
	if err != nil {
		t.Fatalf("DecodeProgressPhoto failed: %v", err)
	}

	if got.ImageRef != "pics/front.jpg" {
		t.Errorf("ImageRef = %s, want pics/front.jpg", got.ImageRef)
	}
	if got.Weight == nil || *got.Weight != 81.2 {
		t.Errorf("Weight = %v, want 81.2", got.Weight)
	}
	if got.Notes != nil {
		t.Errorf("Notes = %v, want nil", got.Notes)
	}
	if !got.Date.Equal(p.Date) {
		t.Errorf("Date = %v, want %v", got.Date, p.Date)
	}
}

func TestDecodeAllSkipsMalformed(t *testing.T) {
	good1 := EncodeSplit(models.NewSplit(uuid.New(), "PPL"))
	good2 := EncodeSplit(models.NewSplit(uuid.New(), "Upper/Lower"))
	bad := EncodeSplit(models.NewSplit(uuid.New(), "Broken"))
	delete(bad, "name")

	splits := DecodeAll(nil, []store.Document{good1, bad, good2}, DecodeSplit)
	if len(splits) != 2 {
		t.Fatalf("expected 2 decoded splits, got %d", len(splits))
	}
	for _, s := range splits {
		if s.Name == "Broken" {
			t.Error("malformed document should have been skipped")
		}
	}
}

func TestDecodeAllEmptyBatch(t *testing.T) {
	splits := DecodeAll(nil, nil, DecodeSplit)
	if len(splits) != 0 {
		t.Errorf("expected empty result, got %d", len(splits))
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := skipErr(store.Sessions, "userId", "missing")
	want := `decode sessions: field "userId": missing`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
