package inventory

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hms/hms/pkg/numeric"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const cols = `id, name, category, stock, min_threshold, price, expiry_date, created_at, updated_at`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	var stock, threshold int
	var price float64
	err := row.Scan(&m.ID, &m.Name, &m.Category, &stock, &threshold, &price,
		&m.ExpiryDate, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	m.Stock = numeric.Int(stock)
	m.MinThreshold = numeric.Int(threshold)
	m.Price = numeric.Float(price)
	return &m, nil
}

func (r *repoPG) collect(rows pgx.Rows) ([]*Medicine, error) {
	defer rows.Close()
	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *repoPG) List(ctx context.Context) ([]*Medicine, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medicine ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) ListLowStock(ctx context.Context) ([]*Medicine, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+cols+` FROM medicine WHERE stock <= min_threshold ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Medicine, error) {
	return scanMedicine(r.pool.QueryRow(ctx, `SELECT `+cols+` FROM medicine WHERE id = $1`, id))
}

func (r *repoPG) Create(ctx context.Context, m *Medicine) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO medicine (name, category, stock, min_threshold, price, expiry_date)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`,
		m.Name, m.Category, int(m.Stock), int(m.MinThreshold), float64(m.Price), m.ExpiryDate).
		Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *repoPG) Update(ctx context.Context, m *Medicine) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medicine SET name=$2, category=$3, stock=$4, min_threshold=$5,
			price=$6, expiry_date=$7, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.Category, int(m.Stock), int(m.MinThreshold),
		float64(m.Price), m.ExpiryDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medicine WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
