package webinar

import (
	"fmt"
	"time"
)

const (
	isoDateLayout  = "2006-01-02"
	longDateLayout = "Monday, January 2, 2006"
)

// ParseDate parses an ISO-8601 calendar date ("2024-01-15") or a full
// RFC 3339 timestamp. Timestamps keep the calendar date of their own offset.
func ParseDate(iso string) (time.Time, error) {
	if t, err := time.Parse(isoDateLayout, iso); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, iso)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDate renders an ISO date as "Monday, January 15, 2024".
func FormatDate(iso string) (string, error) {
	t, err := ParseDate(iso)
	if err != nil {
		return "", err
	}
	return t.Format(longDateLayout), nil
}

// DisplayDate is FormatDate for templates: unparseable input is shown as-is.
func DisplayDate(iso string) string {
	s, err := FormatDate(iso)
	if err != nil {
		return iso
	}
	return s
}
