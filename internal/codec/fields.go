// ABOUTME: Field accessors and epoch conversions for document decoding.
// ABOUTME: Tolerates the numeric widening JSON round-trips introduce.
package codec

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/splitfitapp/splitfit/internal/store"
)

const secondsPerDay = 86400

// DecodeError marks a single document that could not be decoded.
// Batch decodes skip the document and report the error; they never
// fail the batch.
type DecodeError struct {
	Collection string
	Field      string
	Reason     string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: field %q: %s", e.Collection, e.Field, e.Reason)
}

func skipErr(collection, field, reason string) error {
	return &DecodeError{Collection: collection, Field: field, Reason: reason}
}

// reqString returns a required string field or a DecodeError.
func reqString(collection string, d store.Document, field string) (string, error) {
	v, ok := d[field]
	if !ok || v == nil {
		return "", skipErr(collection, field, "missing")
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", skipErr(collection, field, "not a string")
	}
	return s, nil
}

// reqID returns a required UUID field or a DecodeError.
func reqID(collection string, d store.Document, field string) (uuid.UUID, error) {
	s, err := reqString(collection, d, field)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, skipErr(collection, field, "invalid uuid")
	}
	return id, nil
}

// optString returns an optional string field, nil when absent.
func optString(d store.Document, field string) *string {
	if s, ok := d[field].(string); ok {
		return &s
	}
	return nil
}

// stringOr returns a string field or the fallback.
func stringOr(d store.Document, field, fallback string) string {
	if s, ok := d[field].(string); ok {
		return s
	}
	return fallback
}

// intOr returns an integer field or the fallback. Stored numbers may
// arrive as float64, int, int64, or json.Number.
func intOr(d store.Document, field string, fallback int64) int64 {
	n, ok := asInt(d[field])
	if !ok {
		return fallback
	}
	return n
}

// floatOr returns a float field or the fallback.
func floatOr(d store.Document, field string, fallback float64) float64 {
	n, ok := asFloat(d[field])
	if !ok {
		return fallback
	}
	return n
}

// optFloat returns an optional float field, nil when absent.
func optFloat(d store.Document, field string) *float64 {
	n, ok := asFloat(d[field])
	if !ok {
		return nil
	}
	return &n
}

// boolOr returns a bool field or the fallback.
func boolOr(d store.Document, field string, fallback bool) bool {
	if b, ok := d[field].(bool); ok {
		return b
	}
	return fallback
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// encodeTime converts a timestamp to epoch seconds.
func encodeTime(t time.Time) int64 {
	return t.Unix()
}

// timeOrNow decodes an epoch-seconds field. A missing timestamp falls
// back to the current time rather than failing; the document is kept.
func timeOrNow(d store.Document, field string) time.Time {
	n, ok := asInt(d[field])
	if !ok {
		return time.Now().Truncate(time.Second)
	}
	return time.Unix(n, 0)
}

// optTime decodes an optional epoch-seconds field, nil when absent.
func optTime(d store.Document, field string) *time.Time {
	n, ok := asInt(d[field])
	if !ok {
		return nil
	}
	t := time.Unix(n, 0)
	return &t
}

// encodeDate converts a calendar date to epoch days.
func encodeDate(t time.Time) int64 {
	return t.UTC().Unix() / secondsPerDay
}

// dateOrToday decodes an epoch-days field, falling back to today.
func dateOrToday(d store.Document, field string) time.Time {
	n, ok := asInt(d[field])
	if !ok {
		y, m, day := time.Now().UTC().Date()
		return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	}
	return time.Unix(n*secondsPerDay, 0).UTC()
}
