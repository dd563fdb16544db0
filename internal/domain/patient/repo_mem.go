package patient

import (
	"context"
	"sync"
	"time"
)

// repoMem backs the seed command and tests. It preserves insertion order so
// listings are deterministic without a database.
type repoMem struct {
	mu     sync.RWMutex
	nextID int64
	items  []*Patient
}

func NewRepoMem() Repository { return &repoMem{nextID: 1} }

func (r *repoMem) List(ctx context.Context) ([]*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Patient, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repoMem) Create(ctx context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = r.nextID
	r.nextID++
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	cp := *p
	r.items = append(r.items, &cp)
	return nil
}

func (r *repoMem) Update(ctx context.Context, p *Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == p.ID {
			p.CreatedAt = cur.CreatedAt
			p.UpdatedAt = time.Now()
			cp := *p
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
