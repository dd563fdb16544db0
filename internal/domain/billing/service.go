package billing

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/internal/lookup"
	"github.com/hms/hms/internal/search"
	"github.com/hms/hms/pkg/dates"
)

type Service struct {
	bills    Repository
	patients patient.Repository
}

func NewService(bills Repository, patients patient.Repository) *Service {
	return &Service{bills: bills, patients: patients}
}

func (s *Service) Create(ctx context.Context, b *Bill) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Date == "" {
		b.Date = dates.Today()
	}
	if err := validate(b); err != nil {
		return err
	}
	return s.bills.Create(ctx, b)
}

func (s *Service) Get(ctx context.Context, id int64) (*Bill, error) {
	return s.bills.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, b *Bill) error {
	if err := validate(b); err != nil {
		return err
	}
	return s.bills.Update(ctx, b)
}

// UpdateStatus moves a pending bill to paid or overdue. Marking paid stamps
// PaidAt with today's date.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next Status) (*Bill, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("invalid status: %s", next)
	}
	b, err := s.bills.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.CanTransition(next) {
		return nil, fmt.Errorf("cannot transition from %s to %s", b.Status, next)
	}
	b.Status = next
	if next == StatusPaid {
		today := dates.Today()
		b.PaidAt = &today
	}
	if err := s.bills.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.bills.Delete(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	return s.bills.ListByPatient(ctx, patientID)
}

// Search filters bills by a free-text query over the resolved patient name
// and the bill id's digits, plus an optional exact status filter.
func (s *Service) Search(ctx context.Context, query, status string) ([]*View, error) {
	var (
		bills []*Bill
		pats  []*patient.Patient
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { bills, err = s.bills.List(gctx); return })
	g.Go(func() (err error) { pats, err = s.patients.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ix := lookup.NewIndex(pats, nil)
	views := make([]*View, 0, len(bills))
	for _, b := range bills {
		views = append(views, &View{
			Bill:        *b,
			PatientName: ix.PatientName(b.PatientID),
		})
	}

	return search.Apply(views, query,
		func(v *View) []string { return []string{v.PatientName, strconv.FormatInt(v.ID, 10)} },
		search.Equals(func(v *View) string { return string(v.Status) }, status),
	), nil
}

func validate(b *Bill) error {
	if b.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if b.TotalAmount < 0 {
		return fmt.Errorf("total_amount must not be negative")
	}
	if !b.Status.Valid() {
		return fmt.Errorf("invalid status: %s", b.Status)
	}
	return nil
}
