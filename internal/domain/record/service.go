package record

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/lookup"
	"github.com/hms/hms/internal/search"
	"github.com/hms/hms/pkg/dates"
)

type Service struct {
	records  Repository
	patients patient.Repository
	doctors  doctor.Repository
}

func NewService(records Repository, patients patient.Repository, doctors doctor.Repository) *Service {
	return &Service{records: records, patients: patients, doctors: doctors}
}

func (s *Service) Create(ctx context.Context, rec *Record) error {
	if rec.Date == "" {
		rec.Date = dates.Today()
	}
	if err := validate(rec); err != nil {
		return err
	}
	return s.records.Create(ctx, rec)
}

func (s *Service) Get(ctx context.Context, id int64) (*Record, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, rec *Record) error {
	if err := validate(rec); err != nil {
		return err
	}
	return s.records.Update(ctx, rec)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.records.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Record, error) {
	return s.records.ListByPatient(ctx, patientID)
}

// Search loads records with the patient and doctor collections, resolves
// display names and filters by a free-text query over resolved names,
// diagnosis and treatment.
func (s *Service) Search(ctx context.Context, query string) ([]*View, error) {
	var (
		recs    []*Record
		pats    []*patient.Patient
		doctors []*doctor.Doctor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { recs, err = s.records.List(gctx); return })
	g.Go(func() (err error) { pats, err = s.patients.List(gctx); return })
	g.Go(func() (err error) { doctors, err = s.doctors.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := lookup.NewIndex(pats, doctors)
	views := make([]*View, 0, len(recs))
	for _, rec := range recs {
		views = append(views, &View{
			Record:      *rec,
			PatientName: ix.PatientName(rec.PatientID),
			DoctorName:  ix.DoctorName(rec.DoctorID),
		})
	}

	return search.Apply(views, query, func(v *View) []string {
		return []string{v.PatientName, v.DoctorName, v.Diagnosis, v.Treatment}
	}), nil
}

func validate(rec *Record) error {
	if rec.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if rec.DoctorID == 0 {
		return fmt.Errorf("doctor_id is required")
	}
	if rec.Diagnosis == "" {
		return fmt.Errorf("diagnosis is required")
	}
	if _, ok := dates.Parse(rec.Date); !ok {
		return fmt.Errorf("invalid date: %s", rec.Date)
	}
	return nil
}
