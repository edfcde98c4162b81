package booking

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/carebook/carebook/internal/domain/directory"
	"github.com/carebook/carebook/internal/platform/timefmt"
)

type Service struct {
	directory *directory.Service
	store     *Store
	gateway   Gateway
	logger    zerolog.Logger
}

func NewService(dir *directory.Service, store *Store, gw Gateway, logger zerolog.Logger) *Service {
	return &Service{directory: dir, store: store, gateway: gw, logger: logger}
}

// CreateSession opens a booking session for a doctor and one of their
// scheduled slots. The slot must appear verbatim in the schedule and must
// format cleanly; its display date and time are fixed at selection.
func (s *Service) CreateSession(ctx context.Context, doctorID int, slot string) (*Session, error) {
	doctor, err := s.directory.GetDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.HasSlot(slot) {
		return nil, ErrSlotNotInSchedule
	}
	f, err := timefmt.FormatDateTime(slot)
	if err != nil {
		return nil, err
	}
	sess := newSession(doctor.ID, doctor.Name, slot, f.Date, f.Time)
	s.store.Put(sess)
	s.logger.Info().
		Str("session_id", sess.ID).
		Int("doctor_id", doctor.ID).
		Str("slot", slot).
		Msg("booking session created")
	return sess, nil
}

func (s *Service) GetSession(_ context.Context, id string) (*Session, error) {
	return s.store.Get(id)
}

// SelectSlot swaps the session onto another of the doctor's scheduled
// slots. An out-of-schedule or unparsable slot is rejected and the
// current selection stays as it was.
func (s *Service) SelectSlot(ctx context.Context, id, slot string) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	doctor, err := s.directory.GetDoctor(ctx, sess.DoctorID)
	if err != nil {
		return nil, err
	}
	if !doctor.HasSlot(slot) {
		return nil, ErrSlotNotInSchedule
	}
	f, err := timefmt.FormatDateTime(slot)
	if err != nil {
		return nil, err
	}
	if err := sess.SelectSlot(slot, f.Date, f.Time); err != nil {
		return nil, err
	}
	return sess, nil
}

// UpdateForm stores the patient form on the session.
func (s *Service) UpdateForm(_ context.Context, id string, form PatientForm) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := sess.SetForm(form); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit drives the session through validation and the gateway call. The
// session is returned alongside the error so callers can surface field
// errors and failure messages.
func (s *Service) Submit(ctx context.Context, id string) (*Session, error) {
	sess, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := sess.Submit(ctx, s.gateway); err != nil {
		switch {
		case errors.Is(err, ErrInvalidForm):
			s.logger.Debug().Str("session_id", sess.ID).Msg("booking form invalid")
		case errors.Is(err, ErrSubmitInFlight), errors.Is(err, ErrSessionClosed):
			// Rejected without reaching the gateway; nothing to report.
		default:
			s.logger.Warn().Str("session_id", sess.ID).Err(err).Msg("booking submission failed")
		}
		return sess, err
	}
	s.logger.Info().
		Str("session_id", sess.ID).
		Str("reference", sess.Reference).
		Msg("booking confirmed")
	return sess, nil
}
