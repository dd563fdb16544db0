package record

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

type Repository interface {
	List(ctx context.Context) ([]*Record, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Record, error)
	GetByID(ctx context.Context, id int64) (*Record, error)
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id int64) error
}
