package booking

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSubmitInFlight    = errors.New("submission already in progress")
	ErrSessionClosed     = errors.New("booking session already confirmed")
	ErrInvalidForm       = errors.New("form validation failed")
	ErrSlotNotInSchedule = errors.New("slot is not in the doctor's schedule")
)

const (
	msgServiceUnavailable = "Booking service temporarily unavailable"
	msgBookingFailed      = "Failed to book appointment"
)

// Session carries one patient's booking attempt from slot selection through
// confirmation. All state transitions go through the session's own mutex so
// concurrent submits collapse to a single gateway call. Sessions are never
// serialized directly; callers take a Snapshot.
type Session struct {
	ID          string
	State       State
	DoctorID    int
	DoctorName  string
	Slot        string
	Date        string
	Time        string
	Form        PatientForm
	FormErrors  FormErrors
	Error       string
	Reference   string
	ConfirmedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	mu       sync.Mutex
	inFlight bool
}

// View is a point-in-time copy of a session's serializable state.
type View struct {
	ID          string      `json:"id"`
	State       State       `json:"state"`
	DoctorID    int         `json:"doctor_id"`
	DoctorName  string      `json:"doctor_name"`
	Slot        string      `json:"slot"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Form        PatientForm `json:"form"`
	FormErrors  FormErrors  `json:"form_errors,omitempty"`
	Error       string      `json:"error,omitempty"`
	Reference   string      `json:"reference,omitempty"`
	ConfirmedAt *time.Time  `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Snapshot copies the session's state under its mutex so the copy can be
// marshaled while another request mutates the live session. The FormErrors
// map is shared by reference; validation maps are write-once, never mutated
// after they are published.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := View{
		ID:         s.ID,
		State:      s.State,
		DoctorID:   s.DoctorID,
		DoctorName: s.DoctorName,
		Slot:       s.Slot,
		Date:       s.Date,
		Time:       s.Time,
		Form:       s.Form,
		FormErrors: s.FormErrors,
		Error:      s.Error,
		Reference:  s.Reference,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
	if !s.ConfirmedAt.IsZero() {
		t := s.ConfirmedAt
		v.ConfirmedAt = &t
	}
	return v
}

func newSession(doctorID int, doctorName, slot, date, timeOfDay string) *Session {
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		State:      StateIdle,
		DoctorID:   doctorID,
		DoctorName: doctorName,
		Slot:       slot,
		Date:       date,
		Time:       timeOfDay,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SetForm replaces the patient form. Editing clears stale validation errors,
// mirroring a user typing over a corrected field. Rejected once the session
// is confirmed or while a submission is running.
func (s *Session) SetForm(form PatientForm) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State.Terminal() {
		return ErrSessionClosed
	}
	if s.inFlight {
		return ErrSubmitInFlight
	}
	s.Form = form
	s.FormErrors = nil
	s.Error = ""
	s.UpdatedAt = time.Now()
	return nil
}

// SelectSlot replaces the selected slot and its display formatting. A
// rejected selection never reaches this method, so the prior selection is
// only ever overwritten by a validated one.
func (s *Session) SelectSlot(slot, date, timeOfDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State.Terminal() {
		return ErrSessionClosed
	}
	if s.inFlight {
		return ErrSubmitInFlight
	}
	s.Slot = slot
	s.Date = date
	s.Time = timeOfDay
	s.UpdatedAt = time.Now()
	return nil
}

// Submit runs the validation pipeline and, when the form is clean, makes
// exactly one gateway call. A second Submit while one is in flight returns
// ErrSubmitInFlight without touching the gateway. A failed submission keeps
// the form and slot intact so the caller can retry.
func (s *Session) Submit(ctx context.Context, gw Gateway) error {
	s.mu.Lock()
	if s.State.Terminal() {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	if s.inFlight {
		s.mu.Unlock()
		return ErrSubmitInFlight
	}

	s.State = StateValidating
	if errs := Validate(s.Form); !errs.OK() {
		s.State = StateInvalid
		s.FormErrors = errs
		s.UpdatedAt = time.Now()
		s.mu.Unlock()
		return ErrInvalidForm
	}

	s.State = StateSubmitting
	s.FormErrors = nil
	s.Error = ""
	s.inFlight = true
	details := &AppointmentDetails{
		DoctorID:    s.DoctorID,
		DoctorName:  s.DoctorName,
		Slot:        s.Slot,
		Date:        s.Date,
		Time:        s.Time,
		PatientName: s.Form.PatientName,
		Email:       s.Form.Email,
	}
	s.mu.Unlock()

	err := gw.Book(ctx, details)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false
	s.UpdatedAt = time.Now()
	if err != nil {
		s.State = StateFailed
		if errors.Is(err, ErrServiceUnavailable) {
			s.Error = msgServiceUnavailable
		} else {
			s.Error = msgBookingFailed
		}
		return err
	}
	s.State = StateConfirmed
	s.Reference = uuid.NewString()
	s.ConfirmedAt = time.Now()
	return nil
}

// Details returns the confirmed appointment, or nil before confirmation.
func (s *Session) Details() *AppointmentDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.State != StateConfirmed {
		return nil
	}
	confirmedAt := s.ConfirmedAt
	return &AppointmentDetails{
		Reference:   s.Reference,
		DoctorID:    s.DoctorID,
		DoctorName:  s.DoctorName,
		Slot:        s.Slot,
		Date:        s.Date,
		Time:        s.Time,
		PatientName: s.Form.PatientName,
		Email:       s.Form.Email,
		ConfirmedAt: &confirmedAt,
	}
}
