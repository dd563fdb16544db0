package patient

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/search"
	"github.com/hms/hms/pkg/dates"
)

type Service struct {
	patients Repository
}

func NewService(patients Repository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Create(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	if p.RegistrationDate == "" {
		p.RegistrationDate = dates.Today()
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, p *Patient) error {
	if err := validate(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

// Search filters the full collection by a free-text query over name, phone
// and email.
func (s *Service) Search(ctx context.Context, query string) ([]*Patient, error) {
	items, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Apply(items, query, func(p *Patient) []string {
		return []string{p.FullName(), p.Phone, p.Email}
	}), nil
}

func validate(p *Patient) error {
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	if p.DateOfBirth == "" {
		return fmt.Errorf("date_of_birth is required")
	}
	if _, ok := dates.Parse(p.DateOfBirth); !ok {
		return fmt.Errorf("invalid date_of_birth: %s", p.DateOfBirth)
	}
	if !p.Gender.Valid() {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	if p.Phone == "" {
		return fmt.Errorf("phone is required")
	}
	if p.Email == "" {
		return fmt.Errorf("email is required")
	}
	if p.Address == "" {
		return fmt.Errorf("address is required")
	}
	if p.EmergencyContactName == "" || p.EmergencyContactPhone == "" || p.EmergencyContactRelationship == "" {
		return fmt.Errorf("emergency contact name, phone and relationship are required")
	}
	if p.BloodType != nil && !ValidBloodTypes[*p.BloodType] {
		return fmt.Errorf("invalid blood_type: %s", *p.BloodType)
	}
	return nil
}
