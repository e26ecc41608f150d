// Package memory is a process-local credential store for local runs and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"user-account-api/internal/domain/user"
)

type Repository struct {
	mu      sync.RWMutex
	byID    map[user.ID]user.User
	byEmail map[string]user.ID
}

func NewRepository() *Repository {
	return &Repository{
		byID:    make(map[user.ID]user.User),
		byEmail: make(map[string]user.ID),
	}
}

func (r *Repository) FetchUserByID(_ context.Context, id user.ID) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *Repository) FetchUserByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	u := r.byID[id]
	return &u, nil
}

func (r *Repository) FetchUsers(_ context.Context, filter user.Filter) (user.Users, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	us := user.Users{}
	for _, u := range r.byID {
		if !matches(u, filter) {
			continue
		}
		u := u
		us = append(us, &u)
	}
	sort.Slice(us, func(i, j int) bool {
		if us[i].CreatedAt.Equal(us[j].CreatedAt) {
			return us[i].ID.String() < us[j].ID.String()
		}
		return us[i].CreatedAt.Before(us[j].CreatedAt)
	})

	return us, nil
}

// CreateUser enforces email uniqueness the way the users_email_key constraint does.
func (r *Repository) CreateUser(_ context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return nil, user.ErrEmailAlreadyExists
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID

	return &u, nil
}

func matches(u user.User, f user.Filter) bool {
	if f.Q != "" && !strings.Contains(u.Name, f.Q) && !strings.Contains(u.Email, f.Q) {
		return false
	}
	if f.Country != "" && (u.Country == nil || *u.Country != f.Country) {
		return false
	}
	return true
}
