// Package timefmt formats schedule slot timestamps for display.
//
// Slot values travel through the API as strings ("2025-07-14T09:30:00" or
// full RFC3339). Formatting is fixed to the en-US convention the booking
// pages render: short weekday + short month + numeric day for the date,
// zero-padded 12-hour clock for the time.
package timefmt

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a slot value cannot be parsed.
var ErrInvalidDate = errors.New("invalid date string provided")

const (
	dateLayout = "Mon, Jan 2"
	timeLayout = "03:04 PM"
)

// slotLayouts are the accepted input forms, tried in order.
var slotLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// Formatted is the display form of a slot.
type Formatted struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// Parse converts a slot string into a time value. The zone of the input is
// preserved; slots without a zone are treated as local wall-clock time.
func Parse(slot string) (time.Time, error) {
	for _, layout := range slotLayouts {
		if t, err := time.ParseInLocation(layout, slot, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDateTime formats a slot for display. It is pure: identical input
// yields identical output on every call.
func FormatDateTime(slot string) (Formatted, error) {
	t, err := Parse(slot)
	if err != nil {
		return Formatted{}, err
	}
	return Formatted{
		Date: t.Format(dateLayout),
		Time: t.Format(timeLayout),
	}, nil
}

// IsToday reports whether the slot falls on the current calendar day.
func IsToday(slot string) bool {
	t, err := Parse(slot)
	if err != nil {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := time.Now().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsFuture reports whether the slot is strictly after the current instant.
func IsFuture(slot string) bool {
	t, err := Parse(slot)
	if err != nil {
		return false
	}
	return t.After(time.Now())
}
