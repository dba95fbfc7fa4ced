package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := Timestamp{Time: time.Date(2024, 5, 1, 12, 11, 12, 345678000, time.FixedZone("CEST", 2*60*60))}

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01T10:11:12.345Z"`, string(data))

	data, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "iso string",
			input:    `"2024-05-01T10:11:12.345Z"`,
			expected: time.Date(2024, 5, 1, 10, 11, 12, 345000000, time.UTC),
		},
		{
			name:     "iso string with offset",
			input:    `"2024-05-01T12:11:12+02:00"`,
			expected: time.Date(2024, 5, 1, 10, 11, 12, 0, time.UTC),
		},
		{
			name:     "epoch seconds",
			input:    `1714558272.345`,
			expected: time.Date(2024, 5, 1, 10, 11, 12, 345000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, tt.expected.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_UnmarshalErrors(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
	assert.Error(t, json.Unmarshal([]byte(`true`), &ts))

	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestamp_Conversions(t *testing.T) {
	now := time.Now()
	assert.Equal(t, now, FromTime(&now).Time)
	assert.Nil(t, FromTime(nil))
	assert.Nil(t, (*Timestamp)(nil).ToTime())
	assert.Equal(t, now, *NewTimestamp(now).ToTime())
	assert.True(t, NewTimestamp(now).Equal(Timestamp{Time: now.UTC()}))
}
