package inventory

import (
	"context"
	"sync"
	"time"
)

type repoMem struct {
	mu     sync.RWMutex
	nextID int64
	items  []*Medicine
}

func NewRepoMem() Repository { return &repoMem{nextID: 1} }

func (r *repoMem) List(ctx context.Context) ([]*Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Medicine, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repoMem) ListLowStock(ctx context.Context) ([]*Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*Medicine
	for _, m := range r.items {
		if m.LowOrOut() {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Medicine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.items {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repoMem) Create(ctx context.Context, m *Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m.ID = r.nextID
	r.nextID++
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	cp := *m
	r.items = append(r.items, &cp)
	return nil
}

func (r *repoMem) Update(ctx context.Context, m *Medicine) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == m.ID {
			m.CreatedAt = cur.CreatedAt
			m.UpdatedAt = time.Now()
			cp := *m
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
