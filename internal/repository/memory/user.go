package memory

import (
	"context"
	"sort"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/user"
)

type userRepo struct {
	s *Store
}

func (s *Store) Users() repository.UserRepository {
	return &userRepo{s: s}
}

func cloneUser(u *user.User) *user.User {
	c := *u
	c.Badges = append([]string(nil), u.Badges...)
	c.Triggers = append([]string(nil), u.Triggers...)
	c.Vulnerabilities = append([]string(nil), u.Vulnerabilities...)
	if u.LastCleanDay != nil {
		d := *u.LastCleanDay
		c.LastCleanDay = &d
	}
	return &c
}

func (r *userRepo) Get(ctx context.Context, id int) (*user.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, apperr.NotFoundf("user with id %d not found", id)
	}
	return cloneUser(u), nil
}

func (r *userRepo) List(ctx context.Context) ([]*user.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*user.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := cloneUser(u)
	c.ID = r.s.nextUserID
	r.s.nextUserID++
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	r.s.users[c.ID] = c
	return cloneUser(c), nil
}

func (r *userRepo) Update(ctx context.Context, u *user.User) (*user.User, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.users[u.ID]
	if !ok {
		return nil, apperr.NotFoundf("user with id %d not found", u.ID)
	}
	c := cloneUser(u)
	c.CreatedAt = prev.CreatedAt
	c.UpdatedAt = time.Now()
	r.s.users[c.ID] = c
	return cloneUser(c), nil
}
