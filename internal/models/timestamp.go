package models

import (
	"encoding/json"
	"time"
)

// TimestampLayout is the on-disk timestamp format: local time at seconds
// precision, no zone offset.
const TimestampLayout = "2006-01-02T15:04:05"

// Timestamp wraps time.Time to serialize in the data files' timestamp format.
type Timestamp struct {
	time.Time
}

// Now returns the current local time truncated to seconds.
func Now() Timestamp {
	return Timestamp{time.Now().Truncate(time.Second)}
}

// NewTimestamp truncates t to seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.Truncate(time.Second)}
}

// SameDay reports whether the timestamp falls on the same calendar day as t.
func (ts Timestamp) SameDay(t time.Time) bool {
	y1, m1, d1 := ts.Date()
	y2, m2, d2 := t.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(ts.Format(TimestampLayout))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return err
	}
	ts.Time = t
	return nil
}
