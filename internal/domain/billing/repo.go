package billing

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("bill not found")

type Repository interface {
	List(ctx context.Context) ([]*Bill, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error)
	GetByID(ctx context.Context, id int64) (*Bill, error)
	Create(ctx context.Context, b *Bill) error
	Update(ctx context.Context, b *Bill) error
	Delete(ctx context.Context, id int64) error
}
