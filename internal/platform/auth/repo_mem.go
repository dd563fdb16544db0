package auth

import (
	"context"
	"strings"
	"sync"
	"time"
)

// userRepoMem is an in-memory UserRepository used as the fixture adapter in
// tests and demos. Interchangeable with the Postgres adapter.
type userRepoMem struct {
	mu     sync.RWMutex
	users  map[int64]*User
	nextID int64
}

func NewUserRepoMem() UserRepository {
	return &userRepoMem{users: make(map[int64]*User), nextID: 1}
}

func (r *userRepoMem) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *userRepoMem) GetByID(_ context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepoMem) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrUserNotFound
}
