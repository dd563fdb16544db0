package appointment

import (
	"context"
	"sync"
	"time"
)

type repoMem struct {
	mu     sync.RWMutex
	nextID int64
	items  []*Appointment
}

func NewRepoMem() Repository { return &repoMem{nextID: 1} }

func (r *repoMem) List(ctx context.Context) ([]*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Appointment, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repoMem) GetByID(ctx context.Context, id int64) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.items {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repoMem) Create(ctx context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.ID = r.nextID
	r.nextID++
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	cp := *a
	r.items = append(r.items, &cp)
	return nil
}

func (r *repoMem) Update(ctx context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, cur := range r.items {
		if cur.ID == a.ID {
			a.CreatedAt = cur.CreatedAt
			a.UpdatedAt = time.Now()
			cp := *a
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
