package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/partnership"
	"pureHeartAPI/internal/repository"
)

type partnershipRepo struct {
	s *Store
}

func (s *Store) Partnerships() repository.PartnershipRepository {
	return &partnershipRepo{s: s}
}

func clonePartnership(p *partnership.Partnership) *partnership.Partnership {
	c := *p
	if p.AcceptedAt != nil {
		t := *p.AcceptedAt
		c.AcceptedAt = &t
	}
	if p.LastCheckIn != nil {
		t := *p.LastCheckIn
		c.LastCheckIn = &t
	}
	if p.EndedAt != nil {
		t := *p.EndedAt
		c.EndedAt = &t
	}
	return &c
}

func (r *partnershipRepo) Get(ctx context.Context, id int) (*partnership.Partnership, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.partnerships[id]
	if !ok {
		return nil, apperr.NotFoundf("partnership with id %d not found", id)
	}
	return clonePartnership(p), nil
}

func (r *partnershipRepo) Create(ctx context.Context, p *partnership.Partnership) (*partnership.Partnership, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := clonePartnership(p)
	c.ID = r.s.nextPartnershipID
	r.s.nextPartnershipID++
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	r.s.partnerships[c.ID] = c
	return clonePartnership(c), nil
}

func (r *partnershipRepo) Update(ctx context.Context, p *partnership.Partnership) (*partnership.Partnership, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.partnerships[p.ID]; !ok {
		return nil, apperr.NotFoundf("partnership with id %d not found", p.ID)
	}
	c := clonePartnership(p)
	r.s.partnerships[c.ID] = c
	return clonePartnership(c), nil
}

func (r *partnershipRepo) CurrentForUser(ctx context.Context, userID int) (*partnership.Partnership, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.partnerships {
		if p.Status == partnership.StatusEnded {
			continue
		}
		if p.Involves(userID) {
			return clonePartnership(p), nil
		}
	}
	return nil, nil
}

func (r *partnershipRepo) AddMessage(ctx context.Context, m *partnership.Message) (*partnership.Message, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := *m
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.SentAt.IsZero() {
		c.SentAt = time.Now()
	}
	r.s.messages = append(r.s.messages, &c)
	stored := c
	return &stored, nil
}

func (r *partnershipRepo) MessagesBetween(ctx context.Context, userA, userB int) ([]*partnership.Message, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*partnership.Message{}
	for _, m := range r.s.messages {
		between := (m.FromUserID == userA && m.ToUserID == userB) ||
			(m.FromUserID == userB && m.ToUserID == userA)
		if !between {
			continue
		}
		c := *m
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SentAt.Before(out[j].SentAt) })
	return out, nil
}
