package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StaticRepository serves the directory from an in-memory dataset. It stands
// where a database-backed repository would in a real deployment; the
// Repository interface keeps that swap invisible to callers.
type StaticRepository struct {
	doctors []*Doctor
	byID    map[int]*Doctor
}

// NewStaticRepository builds a repository over the given dataset. Input order
// is preserved by List.
func NewStaticRepository(doctors []*Doctor) *StaticRepository {
	byID := make(map[int]*Doctor, len(doctors))
	for _, d := range doctors {
		byID[d.ID] = d
	}
	return &StaticRepository{doctors: doctors, byID: byID}
}

// NewSeedRepository builds a repository over the built-in demo dataset.
func NewSeedRepository() *StaticRepository {
	return NewStaticRepository(seedDoctors())
}

// NewFileRepository loads the dataset from a JSON file. A read or decode
// failure is reported as ErrUnavailable.
func NewFileRepository(path string) (*StaticRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var doctors []*Doctor
	if err := json.Unmarshal(raw, &doctors); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return NewStaticRepository(doctors), nil
}

func (r *StaticRepository) List(_ context.Context) ([]*Doctor, error) {
	out := make([]*Doctor, len(r.doctors))
	copy(out, r.doctors)
	return out, nil
}

func (r *StaticRepository) GetByID(_ context.Context, id int) (*Doctor, error) {
	d, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return d, nil
}

// slotIn renders a schedule entry the given number of days ahead of now.
func slotIn(days, hour, min int) string {
	t := time.Now().AddDate(0, 0, days)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, min, 0, 0, time.Local).
		Format("2006-01-02T15:04:05")
}

func seedDoctors() []*Doctor {
	return []*Doctor{
		{
			ID:             1,
			Name:           "Dr. Sarah Mitchell",
			Specialization: "Cardiologist",
			ProfileImage:   "/images/doctors/sarah-mitchell.jpg",
			Availability:   AvailableToday,
			Schedule: []string{
				slotIn(0, 9, 30), slotIn(0, 11, 0), slotIn(0, 14, 30),
				slotIn(1, 10, 0), slotIn(1, 15, 30),
			},
			Experience: "12 years",
			Rating:     4.8,
			Location:   "Downtown Medical Center",
			About:      "Board-certified cardiologist focused on preventive cardiology and early detection of heart disease.",
		},
		{
			ID:             2,
			Name:           "Dr. James Okafor",
			Specialization: "Dermatologist",
			ProfileImage:   "/images/doctors/james-okafor.jpg",
			Availability:   AvailableTomorrow,
			Schedule: []string{
				slotIn(1, 9, 0), slotIn(1, 11, 30), slotIn(2, 13, 0),
			},
			Experience: "8 years",
			Rating:     4.6,
			Location:   "Riverside Clinic",
			About:      "Specialist in medical and cosmetic dermatology with a focus on skin cancer screening.",
		},
		{
			ID:             3,
			Name:           "Dr. Priya Raman",
			Specialization: "Pediatrician",
			ProfileImage:   "/images/doctors/priya-raman.jpg",
			Availability:   AvailableToday,
			Schedule: []string{
				slotIn(0, 8, 30), slotIn(0, 10, 30), slotIn(0, 16, 0),
				slotIn(2, 9, 0),
			},
			Experience: "15 years",
			Rating:     4.9,
			Location:   "Lakeside Children's Clinic",
			About:      "Pediatrician caring for newborns through adolescents, with special interest in developmental health.",
		},
		{
			ID:             4,
			Name:           "Dr. Miguel Alvarez",
			Specialization: "Orthopedic Surgeon",
			ProfileImage:   "/images/doctors/miguel-alvarez.jpg",
			Availability:   FullyBooked,
			Schedule:       []string{},
			Experience:     "20 years",
			Rating:         4.7,
			Location:       "Central Orthopedic Institute",
			About:          "Orthopedic surgeon specializing in sports injuries and minimally invasive joint replacement.",
		},
		{
			ID:             5,
			Name:           "Dr. Emily Chen",
			Specialization: "Cardiac Surgeon",
			ProfileImage:   "/images/doctors/emily-chen.jpg",
			Availability:   AvailableTomorrow,
			Schedule: []string{
				slotIn(1, 8, 0), slotIn(1, 13, 30), slotIn(3, 10, 0),
			},
			Experience: "17 years",
			Rating:     4.9,
			Location:   "Downtown Medical Center",
			About:      "Cardiac surgeon performing valve repair and bypass procedures, with a research background in minimally invasive techniques.",
		},
		{
			ID:             6,
			Name:           "Dr. Anna Kowalski",
			Specialization: "Neurologist",
			ProfileImage:   "/images/doctors/anna-kowalski.jpg",
			Availability:   AvailableToday,
			Schedule: []string{
				slotIn(0, 12, 0), slotIn(0, 15, 0), slotIn(1, 16, 30),
			},
			Experience: "10 years",
			Rating:     4.5,
			Location:   "Northgate Neurology Center",
			About:      "Neurologist treating migraine, epilepsy, and movement disorders.",
		},
	}
}
