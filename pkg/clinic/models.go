package clinic

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// OpeningHours maps a lowercase weekday name to that day's opening ranges,
// each in "HH:MM-HH:MM" form. A missing weekday means closed.
type OpeningHours map[string][]string

// Clinic is a static reference entity describing a donation clinic.
type Clinic struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Address      string       `json:"address"`
	Area         string       `json:"area"`
	Phone        string       `json:"phone"`
	Email        *string      `json:"email,omitempty"`
	OpeningHours OpeningHours `json:"opening_hours"`
	CreatedAt    time.Time    `json:"created_at"`
}

// IsOpenAt reports whether the clinic is open on the given date at the
// given "HH:MM" time.
func (c Clinic) IsOpenAt(date time.Time, hhmm string) bool {
	weekday := strings.ToLower(date.Weekday().String())
	for _, r := range c.OpeningHours[weekday] {
		start, end, ok := strings.Cut(r, "-")
		if !ok {
			continue
		}
		// Zero-padded HH:MM compares correctly as a string.
		if hhmm >= strings.TrimSpace(start) && hhmm < strings.TrimSpace(end) {
			return true
		}
	}
	return false
}
