package appointment

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/lookup"
	"github.com/hms/hms/internal/search"
	"github.com/hms/hms/pkg/dates"
)

type Service struct {
	appointments Repository
	patients     patient.Repository
	doctors      doctor.Repository
}

func NewService(appointments Repository, patients patient.Repository, doctors doctor.Repository) *Service {
	return &Service{appointments: appointments, patients: patients, doctors: doctors}
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	day, _ := dates.Parse(a.Date)
	today, _ := dates.Parse(dates.Today())
	if day.Before(today) {
		return fmt.Errorf("date must not be in the past")
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if err := s.validate(ctx, a); err != nil {
		return err
	}
	return s.appointments.Update(ctx, a)
}

// UpdateStatus applies a status transition. Completed and cancelled are
// terminal; scheduled moves to confirmed or cancelled, confirmed to
// completed.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next Status) (*Appointment, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("invalid status: %s", next)
	}
	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.CanTransition(next) {
		return nil, fmt.Errorf("cannot transition from %s to %s", a.Status, next)
	}
	a.Status = next
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.appointments.Delete(ctx, id)
}

// Search loads appointments together with the patient and doctor collections,
// resolves display names and filters by a free-text query over the resolved
// names and notes, plus an optional exact status filter. Collections load
// concurrently; any single failure fails the whole call.
func (s *Service) Search(ctx context.Context, query, status string) ([]*View, error) {
	var (
		appts   []*Appointment
		pats    []*patient.Patient
		doctors []*doctor.Doctor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { appts, err = s.appointments.List(gctx); return })
	g.Go(func() (err error) { pats, err = s.patients.List(gctx); return })
	g.Go(func() (err error) { doctors, err = s.doctors.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := lookup.NewIndex(pats, doctors)
	views := make([]*View, 0, len(appts))
	for _, a := range appts {
		views = append(views, &View{
			Appointment: *a,
			PatientName: ix.PatientName(a.PatientID),
			DoctorName:  ix.DoctorName(a.DoctorID),
		})
	}

	return search.Apply(views, query,
		func(v *View) []string { return []string{v.PatientName, v.DoctorName, v.Notes} },
		search.Equals(func(v *View) string { return string(v.Status) }, status),
	), nil
}

func (s *Service) validate(ctx context.Context, a *Appointment) error {
	if a.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == 0 {
		return fmt.Errorf("doctor_id is required")
	}
	if _, ok := dates.Parse(a.Date); !ok {
		return fmt.Errorf("invalid date: %s", a.Date)
	}
	if !ValidTimeSlot(a.Time) {
		return fmt.Errorf("invalid time slot: %s", a.Time)
	}
	if !a.Status.Valid() {
		return fmt.Errorf("invalid status: %s", a.Status)
	}
	if _, err := s.patients.GetByID(ctx, int64(a.PatientID)); err != nil {
		if errors.Is(err, patient.ErrNotFound) {
			return fmt.Errorf("patient %d not found", a.PatientID)
		}
		return err
	}
	if _, err := s.doctors.GetByID(ctx, int64(a.DoctorID)); err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			return fmt.Errorf("doctor %d not found", a.DoctorID)
		}
		return err
	}
	return nil
}
