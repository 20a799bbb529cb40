// ABOUTME: Entity codecs mapping domain models to flat store documents.
// ABOUTME: Timestamps encode as epoch seconds, calendar dates as epoch days.
package codec

import (
	"github.com/splitfitapp/splitfit/internal/models"
	"github.com/splitfitapp/splitfit/internal/store"
)

// EncodeUser maps a User to a document.
func EncodeUser(u *models.User) store.Document {
	return store.Document{
		"id":          u.ID.String(),
		"email":       u.Email,
		"displayName": u.DisplayName,
		"createdAt":   encodeTime(u.CreatedAt),
	}
}

// DecodeUser maps a document back to a User.
// Required: id, email. Missing createdAt falls back to now.
func DecodeUser(d store.Document) (*models.User, error) {
	id, err := reqID(store.Users, d, "id")
	if err != nil {
		return nil, err
	}
	email, err := reqString(store.Users, d, "email")
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:          id,
		Email:       email,
		DisplayName: stringOr(d, "displayName", ""),
		CreatedAt:   timeOrNow(d, "createdAt"),
	}, nil
}

// EncodeSplit maps a Split to a document.
func EncodeSplit(s *models.Split) store.Document {
	return store.Document{
		"id":        s.ID.String(),
		"userId":    s.UserID.String(),
		"name":      s.Name,
		"createdAt": encodeTime(s.CreatedAt),
	}
}

// DecodeSplit maps a document back to a Split.
// Required: id, userId, name.
func DecodeSplit(d store.Document) (*models.Split, error) {
	id, err := reqID(store.Splits, d, "id")
	if err != nil {
		return nil, err
	}
	userID, err := reqID(store.Splits, d, "userId")
	if err != nil {
		return nil, err
	}
	name, err := reqString(store.Splits, d, "name")
	if err != nil {
		return nil, err
	}
	return &models.Split{
		ID:        id,
		UserID:    userID,
		Name:      name,
		CreatedAt: timeOrNow(d, "createdAt"),
	}, nil
}

// EncodeSplitDay maps a SplitDay to a document.
func EncodeSplitDay(day *models.SplitDay) store.Document {
	return store.Document{
		"id":        day.ID.String(),
		"splitId":   day.SplitID.String(),
		"dayOfWeek": int64(day.DayOfWeek),
		"name":      day.Name,
		"isRestDay": day.IsRestDay,
	}
}

// DecodeSplitDay maps a document back to a SplitDay.
// Required: id, splitId, name.
func DecodeSplitDay(d store.Document) (*models.SplitDay, error) {
	id, err := reqID(store.SplitDays, d, "id")
	if err != nil {
		return nil, err
	}
	splitID, err := reqID(store.SplitDays, d, "splitId")
	if err != nil {
		return nil, err
	}
	name, err := reqString(store.SplitDays, d, "name")
	if err != nil {
		return nil, err
	}
	return &models.SplitDay{
		ID:        id,
		SplitID:   splitID,
		DayOfWeek: int(intOr(d, "dayOfWeek", 0)),
		Name:      name,
		IsRestDay: boolOr(d, "isRestDay", false),
	}, nil
}

// EncodeExercise maps an Exercise to a document.
func EncodeExercise(e *models.Exercise) store.Document {
	doc := store.Document{
		"id":            e.ID.String(),
		"splitDayId":    e.SplitDayID.String(),
		"name":          e.Name,
		"defaultSets":   int64(e.DefaultSets),
		"restSeconds":   int64(e.RestSeconds),
		"exerciseOrder": int64(e.Order),
		"muscleGroup":   e.MuscleGroup,
	}
	if e.Note != nil {
		doc["note"] = *e.Note
	}
	return doc
}

// DecodeExercise maps a document back to an Exercise.
// Required: id, splitDayId, name.
func DecodeExercise(d store.Document) (*models.Exercise, error) {
	id, err := reqID(store.Exercises, d, "id")
	if err != nil {
		return nil, err
	}
	dayID, err := reqID(store.Exercises, d, "splitDayId")
	if err != nil {
		return nil, err
	}
	name, err := reqString(store.Exercises, d, "name")
	if err != nil {
		return nil, err
	}
	return &models.Exercise{
		ID:          id,
		SplitDayID:  dayID,
		Name:        name,
		DefaultSets: int(intOr(d, "defaultSets", 3)),
		RestSeconds: int(intOr(d, "restSeconds", 90)),
		Note:        optString(d, "note"),
		Order:       int(intOr(d, "exerciseOrder", 0)),
		MuscleGroup: stringOr(d, "muscleGroup", ""),
	}, nil
}

// EncodeSession maps a Session to a document.
func EncodeSession(s *models.Session) store.Document {
	doc := store.Document{
		"id":         s.ID.String(),
		"userId":     s.UserID.String(),
		"splitDayId": s.SplitDayID.String(),
		"date":       encodeDate(s.Date),
		"createdAt":  encodeTime(s.CreatedAt),
		"completed":  s.Completed,
	}
	if s.CompletedAt != nil {
		doc["completedAt"] = encodeTime(*s.CompletedAt)
	}
	return doc
}

// DecodeSession maps a document back to a Session.
// Required: id, userId, splitDayId. Missing date falls back to today.
func DecodeSession(d store.Document) (*models.Session, error) {
	id, err := reqID(store.Sessions, d, "id")
	if err != nil {
		return nil, err
	}
	userID, err := reqID(store.Sessions, d, "userId")
	if err != nil {
		return nil, err
	}
	dayID, err := reqID(store.Sessions, d, "splitDayId")
	if err != nil {
		return nil, err
	}
	return &models.Session{
		ID:          id,
		UserID:      userID,
		SplitDayID:  dayID,
		Date:        dateOrToday(d, "date"),
		CreatedAt:   timeOrNow(d, "createdAt"),
		CompletedAt: optTime(d, "completedAt"),
		Completed:   boolOr(d, "completed", false),
	}, nil
}

// EncodeWorkoutSet maps a WorkoutSet to a document.
func EncodeWorkoutSet(ws *models.WorkoutSet) store.Document {
	return store.Document{
		"id":         ws.ID.String(),
		"sessionId":  ws.SessionID.String(),
		"exerciseId": ws.ExerciseID.String(),
		"setNumber":  int64(ws.SetNumber),
		"reps":       int64(ws.Reps),
		"weight":     ws.Weight,
	}
}

// DecodeWorkoutSet maps a document back to a WorkoutSet.
// Required: id, sessionId, exerciseId.
func DecodeWorkoutSet(d store.Document) (*models.WorkoutSet, error) {
	id, err := reqID(store.Sets, d, "id")
	if err != nil {
		return nil, err
	}
	sessionID, err := reqID(store.Sets, d, "sessionId")
	if err != nil {
		return nil, err
	}
	exerciseID, err := reqID(store.Sets, d, "exerciseId")
	if err != nil {
		return nil, err
	}
	return &models.WorkoutSet{
		ID:         id,
		SessionID:  sessionID,
		ExerciseID: exerciseID,
		SetNumber:  int(intOr(d, "setNumber", 0)),
		Reps:       int(intOr(d, "reps", 0)),
		Weight:     floatOr(d, "weight", 0),
	}, nil
}

// EncodeProgressPhoto maps a ProgressPhoto to a document.
func EncodeProgressPhoto(p *models.ProgressPhoto) store.Document {
	doc := store.Document{
		"id":        p.ID.String(),
		"userId":    p.UserID.String(),
		"imageRef":  p.ImageRef,
		"date":      encodeDate(p.Date),
		"createdAt": encodeTime(p.CreatedAt),
	}
	if p.Weight != nil {
		doc["weight"] = *p.Weight
	}
	if p.Notes != nil {
		doc["notes"] = *p.Notes
	}
	return doc
}

// DecodeProgressPhoto maps a document back to a ProgressPhoto.
// Required: id, userId, imageRef.
func DecodeProgressPhoto(d store.Document) (*models.ProgressPhoto, error) {
	id, err := reqID(store.ProgressPhotos, d, "id")
	if err != nil {
		return nil, err
	}
	userID, err := reqID(store.ProgressPhotos, d, "userId")
	if err != nil {
		return nil, err
	}
	imageRef, err := reqString(store.ProgressPhotos, d, "imageRef")
	if err != nil {
		return nil, err
	}
	return &models.ProgressPhoto{
		ID:        id,
		UserID:    userID,
		ImageRef:  imageRef,
		Weight:    optFloat(d, "weight"),
		Notes:     optString(d, "notes"),
		Date:      dateOrToday(d, "date"),
		CreatedAt: timeOrNow(d, "createdAt"),
	}, nil
}
