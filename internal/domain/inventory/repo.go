package inventory

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("medicine not found")

type Repository interface {
	List(ctx context.Context) ([]*Medicine, error)
	ListLowStock(ctx context.Context) ([]*Medicine, error)
	GetByID(ctx context.Context, id int64) (*Medicine, error)
	Create(ctx context.Context, m *Medicine) error
	Update(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id int64) error
}
