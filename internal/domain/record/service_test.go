package record

import (
	"context"
	"testing"

	"github.com/hms/hms/internal/domain/doctor"
	"github.com/hms/hms/internal/domain/patient"
	"github.com/hms/hms/pkg/numeric"
)

func newService(t *testing.T) (*Service, *patient.Patient, *doctor.Doctor) {
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

	return NewService(NewRepoMem(), patients, doctors), p, d
}

func TestCreateRecord(t *testing.T) {
	svc, p, d := newService(t)
	ctx := context.Background()

	rec := &Record{
		PatientID:    numeric.ID(p.ID),
		DoctorID:     numeric.ID(d.ID),
		Diagnosis:    "Hypertension",
		Treatment:    "Lifestyle changes",
		Prescription: []string{"Lisinopril"},
	}
	if err := svc.Create(ctx, rec); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if rec.Date == "" {
		t.Error("expected date to default to today")
	}

	if err := svc.Create(ctx, &Record{PatientID: numeric.ID(p.ID), DoctorID: numeric.ID(d.ID)}); err == nil {
		t.Error("expected validation error for missing diagnosis")
	}
}

func TestSearchRecords(t *testing.T) {
	svc, p, d := newService(t)
	ctx := context.Background()

	first := &Record{
		PatientID: numeric.ID(p.ID),
		DoctorID:  numeric.ID(d.ID),
		Diagnosis: "Hypertension",
		Treatment: "Medication",
	}
	second := &Record{
		PatientID: 99,
		DoctorID:  numeric.ID(d.ID),
		Diagnosis: "Sprained ankle",
		Treatment: "Rest and ice",
	}
	for _, rec := range []*Record{first, second} {
		if err := svc.Create(ctx, rec); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	views, err := svc.Search(ctx, "hypertension")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 1 || views[0].ID != first.ID {
		t.Fatalf("Search(hypertension) = %d views", len(views))
	}

	views, err = svc.Search(ctx, "ice")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 1 || views[0].ID != second.ID {
		t.Fatalf("treatment search = %d views", len(views))
	}

	// Resolved names are searchable; the orphaned record gets the sentinel.
	views, err = svc.Search(ctx, "miller")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(views) != 1 || views[0].PatientName != "Jane Miller" {
		t.Fatalf("name search = %d views", len(views))
	}

	views, err = svc.Search(ctx, "")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if views[1].PatientName != "Unknown Patient" {
		t.Errorf("orphaned record resolved to %q, want sentinel", views[1].PatientName)
	}
}

func TestListByPatient(t *testing.T) {
	svc, p, d := newService(t)
	ctx := context.Background()

	mine := &Record{PatientID: numeric.ID(p.ID), DoctorID: numeric.ID(d.ID), Diagnosis: "Flu"}
	other := &Record{PatientID: 42, DoctorID: numeric.ID(d.ID), Diagnosis: "Cold"}
	for _, rec := range []*Record{mine, other} {
		if err := svc.Create(ctx, rec); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := svc.ListByPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("ListByPatient failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Errorf("ListByPatient = %d records, want 1", len(got))
	}
}
