package record

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/pkg/numeric"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, patient_id, doctor_id, date, diagnosis, treatment, prescription, notes, created_at, updated_at`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var patientID, doctorID int64
	err := row.Scan(&rec.ID, &patientID, &doctorID, &rec.Date, &rec.Diagnosis,
		&rec.Treatment, &rec.Prescription, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	rec.PatientID = numeric.ID(patientID)
	rec.DoctorID = numeric.ID(doctorID)
	return &rec, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Record, error) {
	defer rows.Close()
	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM record ORDER BY date DESC`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64) ([]*Record, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM record WHERE patient_id = $1 ORDER BY date DESC`, patientID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Record, error) {
	return scanRecord(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM record WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, rec *Record) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO record (patient_id, doctor_id, date, diagnosis, treatment, prescription, notes)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, created_at, updated_at`,
		int64(rec.PatientID), int64(rec.DoctorID), rec.Date, rec.Diagnosis,
		rec.Treatment, rec.Prescription, rec.Notes).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *repoPG) Update(ctx context.Context, rec *Record) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE record SET patient_id=$2, doctor_id=$3, date=$4, diagnosis=$5,
			treatment=$6, prescription=$7, notes=$8, updated_at=NOW()
		WHERE id = $1`,
		rec.ID, int64(rec.PatientID), int64(rec.DoctorID), rec.Date,
		rec.Diagnosis, rec.Treatment, rec.Prescription, rec.Notes)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM record WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
