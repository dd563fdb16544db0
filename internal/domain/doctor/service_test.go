package doctor

import (
	"context"
	"testing"
)

func validDoctor() *Doctor {
	return &Doctor{
		FirstName:       "Asha",
		LastName:        "Rao",
		Specialization:  "Cardiology",
		Phone:           "555-0300",
		Email:           "asha.rao@example.com",
		ConsultationFee: 150,
	}
}

func TestCreateDoctor(t *testing.T) {
	svc := NewService(NewRepoMem())
	ctx := context.Background()

	d := validDoctor()
	if err := svc.Create(ctx, d); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if d.ID == 0 {
		t.Error("expected ID to be assigned")
	}

	got, err := svc.Get(ctx, d.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.FullName() != "Dr. Asha Rao" {
		t.Errorf("FullName = %q, want %q", got.FullName(), "Dr. Asha Rao")
	}
}

func TestCreateDoctorValidation(t *testing.T) {
	svc := NewService(NewRepoMem())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*Doctor)
	}{
		{"missing first name", func(d *Doctor) { d.FirstName = "" }},
		{"missing last name", func(d *Doctor) { d.LastName = "" }},
		{"missing specialization", func(d *Doctor) { d.Specialization = "" }},
		{"negative fee", func(d *Doctor) { d.ConsultationFee = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDoctor()
			tt.mutate(d)
			if err := svc.Create(ctx, d); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSearchDoctors(t *testing.T) {
	svc := NewService(NewRepoMem())
	ctx := context.Background()

	a := validDoctor()
	b := validDoctor()
	b.FirstName = "Viktor"
	b.LastName = "Hale"
	b.Specialization = "Neurology"
	b.Email = "v.hale@example.com"
	for _, d := range []*Doctor{a, b} {
		if err := svc.Create(ctx, d); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	got, err := svc.Search(ctx, "neuro")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].Specialization != "Neurology" {
		t.Fatalf("Search(neuro) = %d results, want the neurologist", len(got))
	}

	got, err = svc.Search(ctx, "dr. asha")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(got) != 1 || got[0].FirstName != "Asha" {
		t.Fatalf("Search(dr. asha) = %d results, want Asha Rao", len(got))
	}
}
