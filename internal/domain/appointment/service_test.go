package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/pkg/dates"
	"github.com/hms/hms/pkg/numeric"
)

type fixture struct {
	svc     *Service
	patient *patient.Patient
	doctor  *doctor.Doctor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	patients := patient.NewRepoMem()
	p := &patient.Patient{FirstName: "Jane", LastName: "Miller"}
	if err := patients.Create(ctx, p); err != nil {
		t.Fatal(err)
	}

	doctors := doctor.NewRepoMem()
	d := &doctor.Doctor{FirstName: "Asha", LastName: "Rao"}
	if err := doctors.Create(ctx, d); err != nil {
		t.Fatal(err)
	}

	return &fixture{
		svc:     NewService(NewRepoMem(), patients, doctors),
		patient: p,
		doctor:  d,
	}
}

func (f *fixture) draft() *Appointment {
	return &Appointment{
		PatientID: numeric.ID(f.patient.ID),
		DoctorID:  numeric.ID(f.doctor.ID),
		Date:      dates.Format(time.Now().AddDate(0, 0, 1)),
		Time:      "09:30",
	}
}

func TestCreateAppointment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.draft()
	if err := f.svc.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Errorf("status = %s, want scheduled default", a.Status)
	}
}

func TestCreateAppointmentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Appointment)
	}{
		{"missing patient", func(a *Appointment) { a.PatientID = 0 }},
		{"unknown patient", func(a *Appointment) { a.PatientID = 99 }},
		{"unknown doctor", func(a *Appointment) { a.DoctorID = 99 }},
		{"bad date", func(a *Appointment) { a.Date = "tomorrow" }},
		{"past date", func(a *Appointment) { a.Date = dates.Format(time.Now().AddDate(0, 0, -1)) }},
		{"off-grid time", func(a *Appointment) { a.Time = "09:15" }},
		{"lunch slot", func(a *Appointment) { a.Time = "13:00" }},
		{"bad status", func(a *Appointment) { a.Status = "booked" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := f.draft()
			tt.mutate(a)
			if err := f.svc.Create(ctx, a); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to Status
		ok       bool
	}{
		{StatusScheduled, StatusConfirmed, true},
		{StatusScheduled, StatusCancelled, true},
		{StatusScheduled, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, false},
		{StatusCompleted, StatusScheduled, false},
		{StatusCancelled, StatusConfirmed, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.ok {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.draft()
	if err := f.svc.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := f.svc.UpdateStatus(ctx, a.ID, StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if got.Status != StatusConfirmed {
		t.Errorf("status = %s, want confirmed", got.Status)
	}

	if _, err := f.svc.UpdateStatus(ctx, a.ID, StatusCancelled); err == nil {
		t.Error("expected transition error from confirmed to cancelled")
	}

	if _, err := f.svc.UpdateStatus(ctx, 99, StatusConfirmed); err != ErrNotFound {
		t.Errorf("UpdateStatus(missing) = %v, want ErrNotFound", err)
	}
}

func TestSearchResolvesNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.draft()
	a.Notes = "follow-up visit"
	if err := f.svc.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	views, err := f.svc.Search(ctx, "", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("got %d views, want 1", len(views))
	}
	if views[0].PatientName != "Jane Miller" {
		t.Errorf("PatientName = %q", views[0].PatientName)
	}
	if views[0].DoctorName != "Dr. Asha Rao" {
		t.Errorf("DoctorName = %q", views[0].DoctorName)
	}

	// Query matches through the resolved name, not a stored field.
	views, err = f.svc.Search(ctx, "miller", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 1 {
		t.Errorf("Search(miller) = %d views, want 1", len(views))
	}

	views, err = f.svc.Search(ctx, "", string(StatusCompleted))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 0 {
		t.Errorf("Search(status=completed) = %d views, want 0", len(views))
	}
}

func TestSearchUnknownPatientSentinel(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	a := f.draft()
	if err := f.svc.Create(ctx, a); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	// Delete the patient out from under the appointment.
	if err := f.svc.patients.Delete(ctx, f.patient.ID); err != nil {
		t.Fatal(err)
	}

	views, err := f.svc.Search(ctx, "", "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 1 || views[0].PatientName != "Unknown Patient" {
		t.Errorf("stale reference resolved to %q, want sentinel", views[0].PatientName)
	}
}
