// Package webinar holds the webinar catalog and the pure helpers used to
// present it: topic styling, date formatting and the details action.
package webinar

import (
	"errors"
	"fmt"
)

// Webinar is a single listing entry. Values are never mutated after load.
type Webinar struct {
	ID            int    `json:"id"`
	Title         string `json:"title"`
	Speaker       string `json:"speaker"`
	Date          string `json:"date"`     // ISO-8601 calendar date
	Time          string `json:"time"`     // display only, never parsed
	Duration      string `json:"duration"` // display only
	Description   string `json:"description"`
	Topic         string `json:"topic"`
	Registrations int    `json:"registrations"`
	IsPopular     bool   `json:"isPopular"`
}

// ErrInvalidDate is returned when a date string is not ISO-8601.
var ErrInvalidDate = errors.New("invalid date")

// ValidationError reports a catalog entry that cannot be served.
type ValidationError struct {
	WebinarID int
	Field     string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("webinar %d: %s: %v", e.WebinarID, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks a single webinar in isolation. Catalog-wide invariants
// (unique IDs) are checked by NewCatalog.
func (w Webinar) Validate() error {
	if w.Registrations < 0 {
		return &ValidationError{WebinarID: w.ID, Field: "registrations", Err: fmt.Errorf("must not be negative, got %d", w.Registrations)}
	}
	if _, err := ParseDate(w.Date); err != nil {
		return &ValidationError{WebinarID: w.ID, Field: "date", Err: err}
	}
	return nil
}

// TopicStyle returns the badge style tokens for the webinar's topic.
func (w Webinar) TopicStyle() string {
	return TopicColor(w.Topic)
}

// FormattedDate returns the long-form display date.
func (w Webinar) FormattedDate() string {
	return DisplayDate(w.Date)
}
