// ABOUTME: Tests for the typed repository over the document store.
// ABOUTME: Covers CRUD, ordering, cascades, numbering, export/import, and migration.
package repo

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

func setupTestRepo(t *testing.T) *Repo {
	t.Helper()
	return New(store.NewMemoryStore(), nil)
}

func TestUpsertAndGetUser(t *testing.T) {
	r := setupTestRepo(t)

	u := models.NewUser("you@example.com", "You")
	if err := r.UpsertUser(u); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	got, err := r.GetUser(u.ID)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got.Email != "you@example.com" {
		t.Errorf("Email = %s, want you@example.com", got.Email)
	}
	if got.DisplayName != "You" {
		t.Errorf("DisplayName = %s, want You", got.DisplayName)
	}
}

func TestFindUserByEmail(t *testing.T) {
	r := setupTestRepo(t)

	u := models.NewUser("you@example.com", "You")
	if err := r.UpsertUser(u); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	got, err := r.FindUserByEmail("you@example.com")
	if err != nil {
		t.Fatalf("FindUserByEmail failed: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("ID = %v, want %v", got.ID, u.ID)
	}

	_, err = r.FindUserByEmail("nobody@example.com")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListSplitsMostRecentFirst(t *testing.T) {
	r := setupTestRepo(t)
	userID := uuid.New()

	old := models.NewSplit(userID, "Old")
	old.CreatedAt = time.Now().Add(-48 * time.Hour)
	recent := models.NewSplit(userID, "Recent")

	for _, s := range []*models.Split{old, recent} {
		if err := r.CreateSplit(s); err != nil {
			t.Fatalf("CreateSplit failed: %v", err)
		}
	}

	splits, err := r.ListSplits(userID)
	if err != nil {
		t.Fatalf("ListSplits failed: %v", err)
	}
	if len(splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(splits))
	}
	if splits[0].Name != "Recent" {
		t.Errorf("expected most recent first, got %s", splits[0].Name)
	}
}

func TestListSplitsScopedToUser(t *testing.T) {
	r := setupTestRepo(t)
	mine := uuid.New()

	if err := r.CreateSplit(models.NewSplit(mine, "Mine")); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	if err := r.CreateSplit(models.NewSplit(uuid.New(), "Theirs")); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}

	splits, err := r.ListSplits(mine)
	if err != nil {
		t.Fatalf("ListSplits failed: %v", err)
	}
	if len(splits) != 1 || splits[0].Name != "Mine" {
		t.Errorf("expected only own split, got %d", len(splits))
	}
}

func TestRenameSplit(t *testing.T) {
	r := setupTestRepo(t)

	s := models.NewSplit(uuid.New(), "Before")
	if err := r.CreateSplit(s); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	if err := r.RenameSplit(s.ID, "After"); err != nil {
		t.Fatalf("RenameSplit failed: %v", err)
	}

	got, err := r.GetSplit(s.ID)
	if err != nil {
		t.Fatalf("GetSplit failed: %v", err)
	}
	if got.Name != "After" {
		t.Errorf("Name = %s, want After", got.Name)
	}
	// The rest of the document survives the partial update.
	if got.UserID != s.UserID {
		t.Errorf("UserID = %v, want %v", got.UserID, s.UserID)
	}
}

func TestDeleteSplitCascades(t *testing.T) {
	r := setupTestRepo(t)

	s := models.NewSplit(uuid.New(), "PPL")
	if err := r.CreateSplit(s); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	day := models.NewSplitDay(s.ID, 1, "Push")
	if err := r.CreateSplitDay(day); err != nil {
		t.Fatalf("CreateSplitDay failed: %v", err)
	}
	ex := models.NewExercise(day.ID, "Bench Press", 1)
	if err := r.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	if err := r.DeleteSplit(s.ID); err != nil {
		t.Fatalf("DeleteSplit failed: %v", err)
	}

	if _, err := r.GetSplit(s.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("split should be gone, got %v", err)
	}
	if _, err := r.GetSplitDay(day.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("day should be gone, got %v", err)
	}
	if _, err := r.GetExercise(ex.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("exercise should be gone, got %v", err)
	}
}

func TestListSplitDaysOrderedByWeekday(t *testing.T) {
	r := setupTestRepo(t)
	splitID := uuid.New()

	for _, d := range []*models.SplitDay{
		models.NewSplitDay(splitID, 5, "Legs"),
		models.NewSplitDay(splitID, 1, "Push"),
		models.NewSplitDay(splitID, 3, "Pull"),
	} {
		if err := r.CreateSplitDay(d); err != nil {
			t.Fatalf("CreateSplitDay failed: %v", err)
		}
	}

	days, err := r.ListSplitDays(splitID)
	if err != nil {
		t.Fatalf("ListSplitDays failed: %v", err)
	}
	want := []string{"Push", "Pull", "Legs"}
	for i, name := range want {
		if days[i].Name != name {
			t.Errorf("days[%d] = %s, want %s", i, days[i].Name, name)
		}
	}
}

func TestListExercisesOrderedByIndex(t *testing.T) {
	r := setupTestRepo(t)
	dayID := uuid.New()

	for _, e := range []*models.Exercise{
		models.NewExercise(dayID, "Lateral Raise", 3),
		models.NewExercise(dayID, "Bench Press", 1),
		models.NewExercise(dayID, "Overhead Press", 2),
	} {
		if err := r.CreateExercise(e); err != nil {
			t.Fatalf("CreateExercise failed: %v", err)
		}
	}

	exercises, err := r.ListExercises(dayID)
	if err != nil {
		t.Fatalf("ListExercises failed: %v", err)
	}
	want := []string{"Bench Press", "Overhead Press", "Lateral Raise"}
	for i, name := range want {
		if exercises[i].Name != name {
			t.Errorf("exercises[%d] = %s, want %s", i, exercises[i].Name, name)
		}
	}
}

func TestNextExerciseOrder(t *testing.T) {
	r := setupTestRepo(t)
	dayID := uuid.New()

	n, err := r.NextExerciseOrder(dayID)
	if err != nil {
		t.Fatalf("NextExerciseOrder failed: %v", err)
	}
	if n != 1 {
		t.Errorf("empty day: order = %d, want 1", n)
	}

	if err := r.CreateExercise(models.NewExercise(dayID, "Squat", 1)); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	if err := r.CreateExercise(models.NewExercise(dayID, "Leg Press", 4)); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	n, err = r.NextExerciseOrder(dayID)
	if err != nil {
		t.Fatalf("NextExerciseOrder failed: %v", err)
	}
	if n != 5 {
		t.Errorf("order = %d, want 5", n)
	}
}

func TestCompleteSession(t *testing.T) {
	r := setupTestRepo(t)

	sess := models.NewSession(uuid.New(), uuid.New())
	if err := r.CreateSession(sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	at := time.Unix(1756555200, 0)
	if err := r.CompleteSession(sess.ID, at); err != nil {
		t.Fatalf("CompleteSession failed: %v", err)
	}

	got, err := r.GetSession(sess.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if !got.Completed {
		t.Error("expected Completed to be true")
	}
	if got.CompletedAt == nil || got.CompletedAt.Unix() != at.Unix() {
		t.Errorf("CompletedAt = %v, want %v", got.CompletedAt, at)
	}
	// Fields outside the partial update survive.
	if got.UserID != sess.UserID {
		t.Errorf("UserID = %v, want %v", got.UserID, sess.UserID)
	}
}

func TestCompleteSessionMissing(t *testing.T) {
	r := setupTestRepo(t)
	err := r.CompleteSession(uuid.New(), time.Now())
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListSessionsOrderAndLimit(t *testing.T) {
	r := setupTestRepo(t)
	userID := uuid.New()
	dayID := uuid.New()

	dates := []time.Time{
		time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		sess := models.NewSession(userID, dayID).WithDate(d)
		if err := r.CreateSession(sess); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	sessions, err := r.ListSessions(userID, 0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	if !sessions[0].Date.Equal(time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected most recent date first, got %v", sessions[0].Date)
	}

	limited, err := r.ListSessions(userID, 2)
	if err != nil {
		t.Fatalf("ListSessions with limit failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 sessions with limit, got %d", len(limited))
	}
}

func TestNextSetNumberPerExercise(t *testing.T) {
	r := setupTestRepo(t)
	sessionID := uuid.New()
	bench := uuid.New()
	squat := uuid.New()

	if err := r.CreateWorkoutSet(models.NewWorkoutSet(sessionID, bench, 1, 8, 100)); err != nil {
		t.Fatalf("CreateWorkoutSet failed: %v", err)
	}
	if err := r.CreateWorkoutSet(models.NewWorkoutSet(sessionID, bench, 2, 6, 105)); err != nil {
		t.Fatalf("CreateWorkoutSet failed: %v", err)
	}

	n, err := r.NextSetNumber(sessionID, bench)
	if err != nil {
		t.Fatalf("NextSetNumber failed: %v", err)
	}
	if n != 3 {
		t.Errorf("bench next = %d, want 3", n)
	}

	// Numbering is per exercise within the session.
	n, err = r.NextSetNumber(sessionID, squat)
	if err != nil {
		t.Fatalf("NextSetNumber failed: %v", err)
	}
	if n != 1 {
		t.Errorf("squat next = %d, want 1", n)
	}
}

func TestListSessionSetsOrdered(t *testing.T) {
	r := setupTestRepo(t)
	sessionID := uuid.New()
	exID := uuid.New()

	for _, num := range []int{3, 1, 2} {
		if err := r.CreateWorkoutSet(models.NewWorkoutSet(sessionID, exID, num, 8, 100)); err != nil {
			t.Fatalf("CreateWorkoutSet failed: %v", err)
		}
	}

	sets, err := r.ListSessionSets(sessionID)
	if err != nil {
		t.Fatalf("ListSessionSets failed: %v", err)
	}
	for i, ws := range sets {
		if ws.SetNumber != i+1 {
			t.Errorf("sets[%d].SetNumber = %d, want %d", i, ws.SetNumber, i+1)
		}
	}
}

func TestListPhotosMostRecentFirst(t *testing.T) {
	r := setupTestRepo(t)
	userID := uuid.New()

	older := models.NewProgressPhoto(userID, "old.jpg").
		WithDate(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	newer := models.NewProgressPhoto(userID, "new.jpg").
		WithDate(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	for _, p := range []*models.ProgressPhoto{older, newer} {
		if err := r.CreatePhoto(p); err != nil {
			t.Fatalf("CreatePhoto failed: %v", err)
		}
	}

	photos, err := r.ListPhotos(userID)
	if err != nil {
		t.Fatalf("ListPhotos failed: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(photos))
	}
	if photos[0].ImageRef != "new.jpg" {
		t.Errorf("expected most recent first, got %s", photos[0].ImageRef)
	}
}

// seedUserData builds a small but complete data set for one user.
func seedUserData(t *testing.T, r *Repo) *models.User {
	t.Helper()

	u := models.NewUser("you@example.com", "You")
	if err := r.UpsertUser(u); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	s := models.NewSplit(u.ID, "PPL")
	if err := r.CreateSplit(s); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	day := models.NewSplitDay(s.ID, 1, "Push")
	if err := r.CreateSplitDay(day); err != nil {
		t.Fatalf("CreateSplitDay failed: %v", err)
	}
	ex := models.NewExercise(day.ID, "Bench Press", 1)
	if err := r.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	sess := models.NewSession(u.ID, day.ID)
	if err := r.CreateSession(sess); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if err := r.CreateWorkoutSet(models.NewWorkoutSet(sess.ID, ex.ID, 1, 8, 100)); err != nil {
		t.Fatalf("CreateWorkoutSet failed: %v", err)
	}

	photo := models.NewProgressPhoto(u.ID, "front.jpg")
	if err := r.CreatePhoto(photo); err != nil {
		t.Fatalf("CreatePhoto failed: %v", err)
	}
	return u
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestRepo(t)
	u := seedUserData(t, src)

	data, err := src.GetAllData(u.ID)
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if data.Version != "1.0" || data.Tool != "splitfit" {
		t.Errorf("header = %s/%s, want 1.0/splitfit", data.Version, data.Tool)
	}
	if len(data.Splits) != 1 || len(data.Sessions) != 1 || len(data.Sets) != 1 || len(data.Photos) != 1 {
		t.Fatalf("unexpected export counts: %d/%d/%d/%d",
			len(data.Splits), len(data.Sessions), len(data.Sets), len(data.Photos))
	}

	dst := setupTestRepo(t)
	if err := dst.ImportData(data); err != nil {
		t.Fatalf("ImportData failed: %v", err)
	}

	// Ids are preserved across the round trip.
	srcSplit := data.Splits[0].Split
	got, err := dst.GetSplit(srcSplit.ID)
	if err != nil {
		t.Fatalf("GetSplit after import failed: %v", err)
	}
	if got.Name != "PPL" {
		t.Errorf("Name = %s, want PPL", got.Name)
	}

	// Importing again overwrites rather than duplicates.
	if err := dst.ImportData(data); err != nil {
		t.Fatalf("second ImportData failed: %v", err)
	}
	splits, err := dst.ListSplits(u.ID)
	if err != nil {
		t.Fatalf("ListSplits failed: %v", err)
	}
	if len(splits) != 1 {
		t.Errorf("expected 1 split after re-import, got %d", len(splits))
	}
}

func TestMigrateData(t *testing.T) {
	src := setupTestRepo(t)
	u := seedUserData(t, src)
	dst := setupTestRepo(t)

	summary, err := MigrateData(src, dst, u.ID)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}

	if summary.Splits != 1 || summary.Days != 1 || summary.Exercises != 1 {
		t.Errorf("plan counts = %d/%d/%d, want 1/1/1",
			summary.Splits, summary.Days, summary.Exercises)
	}
	if summary.Sessions != 1 || summary.Sets != 1 || summary.Photos != 1 {
		t.Errorf("log counts = %d/%d/%d, want 1/1/1",
			summary.Sessions, summary.Sets, summary.Photos)
	}

	if _, err := dst.GetUser(u.ID); err != nil {
		t.Errorf("user missing in destination: %v", err)
	}
	sessions, err := dst.ListSessions(u.ID, 0)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Errorf("expected 1 migrated session, got %d", len(sessions))
	}
}

func TestListSkipsMalformedDocuments(t *testing.T) {
	r := setupTestRepo(t)
	userID := uuid.New()

	good := models.NewSplit(userID, "Good")
	if err := r.CreateSplit(good); err != nil {
		t.Fatalf("CreateSplit failed: %v", err)
	}
	// Write a document missing its required name directly to the store.
	badID := uuid.New()
	err := r.Store().Set(store.Splits, badID.String(), store.Document{
		"id":     badID.String(),
		"userId": userID.String(),
	})
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	splits, err := r.ListSplits(userID)
	if err != nil {
		t.Fatalf("ListSplits failed: %v", err)
	}
	if len(splits) != 1 {
		t.Fatalf("expected 1 decodable split, got %d", len(splits))
	}
	if splits[0].ID != good.ID {
		t.Errorf("ID = %v, want %v", splits[0].ID, good.ID)
	}
}
