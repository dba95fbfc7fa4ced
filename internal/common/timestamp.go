package common

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	smithytime "github.com/aws/smithy-go/time"
)

// isoLayout is the ISO-8601 form the MSK API uses for timestamps in JSON bodies.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is the wire representation of an MSK timestamp.
// The service emits ISO-8601 strings; emulators and older tooling sometimes
// emit numeric Unix timestamps, so both are accepted on decode.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler for Timestamp
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var timestamp float64
	if err := json.Unmarshal(data, &timestamp); err == nil {
		// Round to millisecond precision to avoid floating point issues
		millis := int64(math.Round(timestamp * 1000))
		t.Time = time.UnixMilli(millis).UTC()
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal %s into Timestamp", data)
	}

	parsedTime, err := smithytime.ParseDateTime(str)
	if err != nil {
		// offsets other than Z
		var perr error
		if parsedTime, perr = time.Parse(time.RFC3339Nano, str); perr != nil {
			return fmt.Errorf("cannot parse %s as ISO-8601: %w", str, err)
		}
	}

	t.Time = parsedTime
	return nil
}

// MarshalJSON implements json.Marshaler for Timestamp
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.UTC().Format(isoLayout))
}

// Equal reports whether t and u represent the same instant.
func (t Timestamp) Equal(u Timestamp) bool {
	return t.Time.Equal(u.Time)
}

// NewTimestamp creates a new Timestamp from a time.Time
func NewTimestamp(t time.Time) *Timestamp {
	return &Timestamp{Time: t}
}

// ToTime converts a Timestamp pointer to a time.Time pointer
func (t *Timestamp) ToTime() *time.Time {
	if t == nil {
		return nil
	}
	return &t.Time
}

// FromTime converts a time.Time pointer to a Timestamp pointer
func FromTime(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	return &Timestamp{Time: *t}
}
