package services

import (
	"context"
	"math/rand"
	"time"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/internal/repository"
)

type DailyContentService struct {
	content repository.DailyContentRepository
}

func NewDailyContentService(content repository.DailyContentRepository) *DailyContentService {
	return &DailyContentService{content: content}
}

func (s *DailyContentService) Get(ctx context.Context, id int) (*dailycontent.Content, error) {
	return s.content.Get(ctx, id)
}

// Today returns the entry dated today, falling back to a random one when
// nothing is scheduled for the date.
func (s *DailyContentService) Today(ctx context.Context) (*dailycontent.Content, error) {
	today := time.Now().Format("2006-01-02")
	c, err := s.content.ByDate(ctx, today)
	if err == nil {
		return c, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}
	return s.Random(ctx)
}

func (s *DailyContentService) Random(ctx context.Context) (*dailycontent.Content, error) {
	all, err := s.content.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, apperr.NotFoundf("no daily content available")
	}
	return all[rand.Intn(len(all))], nil
}

func (s *DailyContentService) ByType(ctx context.Context, t dailycontent.ContentType) ([]*dailycontent.Content, error) {
	switch t {
	case dailycontent.TypeVerse, dailycontent.TypeHadith, dailycontent.TypeDua, dailycontent.TypeReflection:
	default:
		return nil, apperr.Validationf("unknown content type %q", t)
	}
	return s.content.ListByType(ctx, t)
}
