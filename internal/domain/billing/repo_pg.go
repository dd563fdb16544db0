package billing

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/pkg/numeric"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, patient_id, services, total_amount, status, date, paid_at, created_at, updated_at`

func scanBill(row pgx.Row) (*Bill, error) {
	var b Bill
	var patientID int64
	err := row.Scan(&b.ID, &patientID, &b.Services, &b.TotalAmount, &b.Status,
		&b.Date, &b.PaidAt, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.PatientID = numeric.ID(patientID)
	return &b, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Bill, error) {
	defer rows.Close()
	var items []*Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context) ([]*Bill, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM bill ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM bill WHERE patient_id = $1 ORDER BY date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Bill, error) {
	return scanBill(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM bill WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, b *Bill) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO bill (patient_id, services, total_amount, status, date, paid_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`,
		int64(b.PatientID), b.Services, b.TotalAmount, b.Status, b.Date, b.PaidAt).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repoPG) Update(ctx context.Context, b *Bill) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE bill SET patient_id=$2, services=$3, total_amount=$4, status=$5,
			date=$6, paid_at=$7, updated_at=NOW()
		WHERE id = $1`,
		b.ID, int64(b.PatientID), b.Services, b.TotalAmount, b.Status, b.Date, b.PaidAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM bill WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
