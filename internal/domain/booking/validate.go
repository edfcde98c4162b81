package booking

import (
	"regexp"
	"strings"
)

const (
	msgNameRequired  = "Patient name is required"
	msgEmailRequired = "Email is required"
	msgEmailInvalid  = "Please enter a valid email address"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[\d\s()-]{10,}$`)
)

// Validate checks the form and returns per-field messages. Name only needs
// to be non-blank here; the stricter ValidPatientName is available for
// callers that want it.
func Validate(form PatientForm) FormErrors {
	errs := FormErrors{}

	if strings.TrimSpace(form.PatientName) == "" {
		errs["patient_name"] = msgNameRequired
	}

	if strings.TrimSpace(form.Email) == "" {
		errs["email"] = msgEmailRequired
	} else if !emailRe.MatchString(form.Email) {
		errs["email"] = msgEmailInvalid
	}

	return errs
}

// ValidEmail reports whether the trimmed address matches the accepted shape.
func ValidEmail(email string) bool {
	return emailRe.MatchString(strings.TrimSpace(email))
}

// ValidPatientName accepts trimmed names of at least two characters made of
// letters and spaces only.
func ValidPatientName(name string) bool {
	return nameRe.MatchString(strings.TrimSpace(name))
}

// ValidPhoneNumber accepts trimmed numbers of at least ten digits, spaces,
// parentheses, or dashes, with an optional leading plus. The form has no
// phone field yet, so like ValidPatientName this is not part of the
// submission pass.
func ValidPhoneNumber(phone string) bool {
	return phoneRe.MatchString(strings.TrimSpace(phone))
}
