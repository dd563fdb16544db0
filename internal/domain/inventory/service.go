package inventory

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/search"
	"github.com/hms/hms/pkg/numeric"
)

// Stock tier filter values accepted by the inventory screen.
const (
	FilterLow = "low"
	FilterOut = "out"
)

type Service struct {
	medicines Repository
}

func NewService(medicines Repository) *Service {
	return &Service{medicines: medicines}
}

func (s *Service) Create(ctx context.Context, m *Medicine) error {
	if err := validate(m); err != nil {
		return err
	}
	return s.medicines.Create(ctx, m)
}

func (s *Service) Get(ctx context.Context, id int64) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, m *Medicine) error {
	if err := validate(m); err != nil {
		return err
	}
	return s.medicines.Update(ctx, m)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.medicines.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Medicine, error) {
	return s.medicines.List(ctx)
}

func (s *Service) ListLowStock(ctx context.Context) ([]*Medicine, error) {
	return s.medicines.ListLowStock(ctx)
}

// AdjustStock applies a signed delta to the stored stock level, clamping at
// zero. Get-then-update; the caller reloads the collection afterwards.
func (s *Service) AdjustStock(ctx context.Context, id int64, delta int) (*Medicine, error) {
	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	next := int(m.Stock) + delta
	if next < 0 {
		next = 0
	}
	m.Stock = numeric.Int(next)
	if err := s.medicines.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Search filters medicines by a free-text query over name and category, an
// optional exact category filter, and an optional stock tier ("low" keeps
// anything at or under threshold, "out" keeps zero stock only).
func (s *Service) Search(ctx context.Context, query, category, tier string) ([]*Medicine, error) {
	items, err := s.medicines.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Apply(items, query,
		func(m *Medicine) []string { return []string{m.Name, m.Category} },
		search.Equals(func(m *Medicine) string { return m.Category }, category),
		tierFilter(tier),
	), nil
}

func tierFilter(tier string) search.Predicate[*Medicine] {
	return func(m *Medicine) bool {
		switch tier {
		case FilterLow:
			return m.LowOrOut()
		case FilterOut:
			return m.Stock == 0
		default:
			return true
		}
	}
}

func validate(m *Medicine) error {
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	if m.MinThreshold < 0 {
		return fmt.Errorf("min_threshold must not be negative")
	}
	if m.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	return nil
}
