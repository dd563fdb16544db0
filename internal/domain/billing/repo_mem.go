package billing

import (
	"context"
	"sync"
	"time"
)

type repoMem struct {
	mu     sync.RWMutex
	nextID int64
	items  []*Bill
}

func NewRepoMem() Repository { return &repoMem{nextID: 1} }

func (r *repoMem) List(ctx context.Context) ([]*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Bill, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repoMem) ListByPatient(ctx context.Context, patientID int64) ([]*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Bill
	for _, b := range r.items {
		if int64(b.PatientID) == patientID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.items {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repoMem) Create(ctx context.Context, b *Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = r.nextID
	r.nextID++
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	cp := *b
	r.items = append(r.items, &cp)
	return nil
}

func (r *repoMem) Update(ctx context.Context, b *Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == b.ID {
			b.CreatedAt = cur.CreatedAt
			b.UpdatedAt = time.Now()
			cp := *b
			r.items[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (r *repoMem) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
