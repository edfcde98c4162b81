package directory

import (
	"encoding/json"
	"fmt"
)

// Availability is the closed set of general bookability labels a doctor can
// carry. It is informational: schedule emptiness, not this label, is the
// authoritative "no bookable slots" signal.
type Availability string

const (
	AvailableToday    Availability = "Available Today"
	AvailableTomorrow Availability = "Available Tomorrow"
	FullyBooked       Availability = "Fully Booked"
)

// ParseAvailability validates a raw label against the closed set.
func ParseAvailability(s string) (Availability, error) {
	switch Availability(s) {
	case AvailableToday, AvailableTomorrow, FullyBooked:
		return Availability(s), nil
	}
	return "", fmt.Errorf("unknown availability status: %q", s)
}

// UnmarshalJSON rejects labels outside the closed set instead of silently
// accepting free text.
func (a *Availability) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseAvailability(raw)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Bookable reports whether the label advertises open slots.
func (a Availability) Bookable() bool {
	switch a {
	case AvailableToday, AvailableTomorrow:
		return true
	case FullyBooked:
		return false
	}
	return false
}

// BadgeTone maps the label to the display tone the UI renders.
func (a Availability) BadgeTone() string {
	switch a {
	case AvailableToday:
		return "green"
	case AvailableTomorrow:
		return "yellow"
	case FullyBooked:
		return "red"
	}
	return "neutral"
}

// Doctor is a directory entry. Loaded once at directory-load time and
// immutable thereafter.
type Doctor struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Specialization string       `json:"specialization"`
	ProfileImage   string       `json:"profile_image"`
	Availability   Availability `json:"availability"`
	Schedule       []string     `json:"schedule"`
	Experience     string       `json:"experience"`
	Rating         float64      `json:"rating"`
	Location       string       `json:"location"`
	About          string       `json:"about"`
}

// HasSlot reports whether slot is a member of the doctor's schedule.
func (d *Doctor) HasSlot(slot string) bool {
	for _, s := range d.Schedule {
		if s == slot {
			return true
		}
	}
	return false
}
