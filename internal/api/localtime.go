package api

import (
	"encoding/json"
	"time"
)

// localDateTimeLayout is the ISO-8601 local datetime format used on the wire,
// e.g. "2025-03-10T14:00:00". No zone offset travels with it.
const localDateTimeLayout = "2006-01-02T15:04:05"

const dateLayout = "2006-01-02"

// LocalDateTime is a time.Time that marshals as a zone-less ISO-8601 local
// datetime.
type LocalDateTime struct {
	time.Time
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(localDateTimeLayout))
}

func (t *LocalDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(localDateTimeLayout, s, time.Local)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// ParseLocalDateTime parses a wire-format local datetime string.
func ParseLocalDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(localDateTimeLayout, s, time.Local)
}

// ParseDate parses an ISO-8601 date-only string.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}
