package api

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDateTimeRoundTrip(t *testing.T) {
	original := LocalDateTime{time.Date(2025, 3, 10, 14, 0, 0, 0, time.Local)}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-10T14:00:00"`, string(data))

	var parsed LocalDateTime
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, original.Equal(parsed.Time), "round trip must preserve the instant to the second")
}

func TestLocalDateTimeUnmarshalRejectsGarbage(t *testing.T) {
	var parsed LocalDateTime
	assert.Error(t, json.Unmarshal([]byte(`"10/03/2025 14:00"`), &parsed))
	assert.Error(t, json.Unmarshal([]byte(`42`), &parsed))
}

func TestParseLocalDateTime(t *testing.T) {
	parsed, err := ParseLocalDateTime("2025-03-10T14:00:00")
	require.NoError(t, err)
	assert.Equal(t, 14, parsed.Hour())
	assert.Equal(t, 0, parsed.Minute())

	_, err = ParseLocalDateTime("2025-03-10")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.March, parsed.Month())

	_, err = ParseDate("2025-03-10T14:00:00")
	assert.Error(t, err)
}
