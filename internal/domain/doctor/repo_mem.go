package doctor

import (
	"context"
	"sync"
	"time"
)

type repoMem struct {
	mu     sync.RWMutex
	nextID int64
	items  []*Doctor
}

func NewRepoMem() Repository { return &repoMem{nextID: 1} }

func (r *repoMem) List(ctx context.Context) ([]*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Doctor, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.items {
		if d.ID == id {
			cp := *d
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repoMem) Create(ctx context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	d.ID = r.nextID
	r.nextID++
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	cp := *d
	r.items = append(r.items, &cp)
	return nil
}

func (r *repoMem) Update(ctx context.Context, d *Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == d.ID {
			d.CreatedAt = cur.CreatedAt
			d.UpdatedAt = time.Now()
			cp := *d
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
