package memory

import (
	"context"
	"sort"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/repository"
	"pureHeartAPI/internal/urgelog"
)

type urgeLogRepo struct {
	s *Store
}

func (s *Store) UrgeLogs() repository.UrgeLogRepository {
	return &urgeLogRepo{s: s}
}

func (r *urgeLogRepo) Get(ctx context.Context, id int) (*urgelog.UrgeLog, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.logs[id]
	if !ok {
		return nil, apperr.NotFoundf("urge log with id %d not found", id)
	}
	c := *l
	return &c, nil
}

func (r *urgeLogRepo) ListByUser(ctx context.Context, userID int) ([]*urgelog.UrgeLog, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*urgelog.UrgeLog{}
	for _, l := range r.s.logs {
		if l.UserID != userID {
			continue
		}
		c := *l
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out, nil
}

func (r *urgeLogRepo) Create(ctx context.Context, l *urgelog.UrgeLog) (*urgelog.UrgeLog, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *l
	c.ID = r.s.nextLogID
	r.s.nextLogID++
	if c.Timestamp.IsZero() {
		c.Timestamp = time.Now()
	}
	r.s.logs[c.ID] = &c
	stored := c
	return &stored, nil
}
