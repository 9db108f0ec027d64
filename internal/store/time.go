package store

import (
	"fmt"
	"strconv"
	"time"
)

// isoMillis is the on-disk timestamp layout. Everything is stored in UTC
// with millisecond precision so values round-trip exactly.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Time is a millisecond-precision UTC timestamp. Declaring a field as
// store.Time marks it as a timestamp for the codec; no other string in a
// document is ever coerced into a date.
type Time struct {
	time.Time
}

// Now returns the current time truncated to the stored precision.
func Now() Time {
	return Time{time.Now().UTC().Truncate(time.Millisecond)}
}

// At wraps t, normalizing it to the stored precision.
func At(t time.Time) Time {
	return Time{t.UTC().Truncate(time.Millisecond)}
}

func (t Time) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time.UTC().Format(isoMillis) + `"`), nil
}

// UnmarshalJSON accepts the canonical layout, any RFC 3339 variant
// (with or without fractional seconds), and bare epoch milliseconds
// written by the previous implementation of the app.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}

	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		raw := s[1 : len(s)-1]
		for _, layout := range []string{isoMillis, time.RFC3339Nano, time.RFC3339} {
			if parsed, err := time.Parse(layout, raw); err == nil {
				t.Time = parsed.UTC().Truncate(time.Millisecond)
				return nil
			}
		}
		return fmt.Errorf("invalid timestamp %q", raw)
	}

	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s", s)
	}
	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

// Equal reports whether two timestamps represent the same instant.
func (t Time) Equal(other Time) bool {
	return t.Time.Equal(other.Time)
}
