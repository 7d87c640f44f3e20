package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ClockLayout is the only accepted wire and storage format for clock times (24h HH:MM).
const ClockLayout = "15:04"

// ClockTime is a time of day without a date or timezone.
// @Description Recurring daily schedule point in HH:MM (24h) format.
type ClockTime struct {
	Hour   int
	Minute int
}

// NewClock builds a ClockTime from hour and minute.
func NewClock(hour, minute int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute}
}

// ParseClock parses an HH:MM string. Empty or malformed input yields nil so that
// invalid values degrade to "absent" instead of reaching the engine.
func ParseClock(value string) *ClockTime {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return nil
	}
	return &ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseClockPtr is ParseClock for optional request fields.
func ParseClockPtr(value *string) *ClockTime {
	if value == nil {
		return nil
	}
	return ParseClock(*value)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MinutesAfterMidnight returns the clock time as minutes since 00:00.
func (c ClockTime) MinutesAfterMidnight() int {
	return c.Hour*60 + c.Minute
}

// On combines the clock time with the calendar date of day, in day's location.
func (c ClockTime) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour, c.Minute, 0, 0, day.Location())
}

// FormatClock renders an optional clock time, nil stays nil.
func FormatClock(c *ClockTime) *string {
	if c == nil {
		return nil
	}
	s := c.String()
	return &s
}

// Value stores the clock time as an HH:MM string.
func (c ClockTime) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan reads an HH:MM (or HH:MM:SS, as returned by TIME columns) value.
func (c *ClockTime) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*c = ClockTime{}
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	case time.Time:
		*c = ClockTime{Hour: v.Hour(), Minute: v.Minute()}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ClockTime", src)
	}

	if len(raw) > len("15:04") {
		raw = raw[:len("15:04")]
	}
	parsed := ParseClock(raw)
	if parsed == nil {
		return fmt.Errorf("invalid clock time %q", raw)
	}
	*c = *parsed
	return nil
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed := ParseClock(raw)
	if parsed == nil {
		return fmt.Errorf("%w: clock time must be HH:MM, got %q", ErrInvalidInput, raw)
	}
	*c = *parsed
	return nil
}
