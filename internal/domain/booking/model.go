package booking

import "time"

// State is the lifecycle position of a booking session.
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateInvalid    State = "invalid"
	StateSubmitting State = "submitting"
	StateConfirmed  State = "confirmed"
	StateFailed     State = "failed"
)

// Terminal reports whether the session can take no further submissions.
func (s State) Terminal() bool {
	return s == StateConfirmed
}

// PatientForm is the patient-supplied portion of a booking.
type PatientForm struct {
	PatientName string `json:"patient_name"`
	Email       string `json:"email"`
}

// FormErrors maps field names to validation messages. An empty map means
// the form passed validation.
type FormErrors map[string]string

func (e FormErrors) OK() bool {
	return len(e) == 0
}

// AppointmentDetails is the snapshot handed to the booking gateway and
// echoed back on confirmation.
type AppointmentDetails struct {
	Reference   string     `json:"reference,omitempty"`
	DoctorID    int        `json:"doctor_id"`
	DoctorName  string     `json:"doctor_name"`
	Slot        string     `json:"slot"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	PatientName string     `json:"patient_name"`
	Email       string     `json:"email"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
}
