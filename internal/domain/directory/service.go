package directory

import (
	"context"

	"github.com/carebook/carebook/internal/platform/timefmt"
)

// SlotView is a schedule entry paired with its display formatting.
type SlotView struct {
	Slot string `json:"slot"`
	Date string `json:"date"`
	Time string `json:"time"`
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListDoctors(ctx context.Context) ([]*Doctor, error) {
	return s.repo.List(ctx)
}

// SearchDoctors filters the directory by name or specialization.
func (s *Service) SearchDoctors(ctx context.Context, query string) ([]*Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(doctors, query), nil
}

func (s *Service) GetDoctor(ctx context.Context, id int) (*Doctor, error) {
	return s.repo.GetByID(ctx, id)
}

// Slots returns the doctor's bookable schedule with display formatting.
// Entries that fail to parse are skipped rather than failing the whole list.
func (s *Service) Slots(ctx context.Context, id int) ([]SlotView, error) {
	doctor, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views := make([]SlotView, 0, len(doctor.Schedule))
	for _, raw := range doctor.Schedule {
		f, err := timefmt.FormatDateTime(raw)
		if err != nil {
			continue
		}
		views = append(views, SlotView{Slot: raw, Date: f.Date, Time: f.Time})
	}
	return views, nil
}
