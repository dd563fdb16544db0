package reporting

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hms/hms/internal/domain/appointment"
	"github.com/hms/hms/internal/domain/billing"
	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/inventory"
	"github.com/hms/hms/internal/domain/patient"
)

// Collections is a point-in-time snapshot of every entity collection the
// derivations consume.
type Collections struct {
	Patients     []*patient.Patient
	Doctors      []*doctor.Doctor
	Appointments []*appointment.Appointment
	Bills        []*billing.Bill
	Medicines    []*inventory.Medicine
}

type Service struct {
	patients     patient.Repository
	doctors      doctor.Repository
	appointments appointment.Repository
	bills        billing.Repository
	medicines    inventory.Repository
}

func NewService(
	patients patient.Repository,
	doctors doctor.Repository,
	appointments appointment.Repository,
	bills billing.Repository,
	medicines inventory.Repository,
) *Service {
	return &Service{
		patients:     patients,
		doctors:      doctors,
		appointments: appointments,
		bills:        bills,
		medicines:    medicines,
	}
}

// load fetches every collection concurrently. A single failed fetch fails
// the whole snapshot; the screens never render partial data.
func (s *Service) load(ctx context.Context) (*Collections, error) {
	var c Collections
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { c.Patients, err = s.patients.List(gctx); return })
	g.Go(func() (err error) { c.Doctors, err = s.doctors.List(gctx); return })
	g.Go(func() (err error) { c.Appointments, err = s.appointments.List(gctx); return })
	g.Go(func() (err error) { c.Bills, err = s.bills.List(gctx); return })
	g.Go(func() (err error) { c.Medicines, err = s.medicines.List(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDashboard(c, time.Now()), nil
}

func (s *Service) Report(ctx context.Context, tf Timeframe) (*Report, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return BuildReport(c, tf, time.Now()), nil
}
