package memory

import (
	"context"
	"sort"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/internal/repository"
)

type dailyContentRepo struct {
	s *Store
}

func (s *Store) DailyContent() repository.DailyContentRepository {
	return &dailyContentRepo{s: s}
}

func (r *dailyContentRepo) Get(ctx context.Context, id int) (*dailycontent.Content, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.content[id]
	if !ok {
		return nil, apperr.NotFoundf("daily content with id %d not found", id)
	}
	out := *c
	return &out, nil
}

func (r *dailyContentRepo) List(ctx context.Context) ([]*dailycontent.Content, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*dailycontent.Content, 0, len(r.s.content))
	for _, c := range r.s.content {
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *dailyContentRepo) ListByType(ctx context.Context, t dailycontent.ContentType) ([]*dailycontent.Content, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []*dailycontent.Content{}
	for _, c := range r.s.content {
		if c.Type != t {
			continue
		}
		cc := *c
		out = append(out, &cc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *dailyContentRepo) ByDate(ctx context.Context, date string) (*dailycontent.Content, error) {
	if err := r.s.delay(ctx); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.content {
		if c.Date == date {
			out := *c
			return &out, nil
		}
	}
	return nil, apperr.NotFoundf("no daily content for %s", date)
}
