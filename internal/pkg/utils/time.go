package utils

import (
	"errors"
	"time"
)

var errUnsupportedDateLayout = errors.New("unsupported date layout")

// Zone-less layouts are read as UTC.
var naiveDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.DateOnly,
}

// ParseAppointmentDate accepts ISO 8601 instants and returns them in UTC,
// truncated to whole seconds.
func ParseAppointmentDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return parsed.UTC().Truncate(time.Second), nil
	}
	for _, layout := range naiveDateLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return parsed.Truncate(time.Second), nil
		}
	}
	return time.Time{}, errUnsupportedDateLayout
}

// FormatISO8601 renders t in UTC with a trailing Z.
func FormatISO8601(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
