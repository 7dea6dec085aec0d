package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/internal/repository/memory"
)

func TestDailyContent_TodayFallsBackToRandom(t *testing.T) {
	store := newSeededStore(t)
	svc := NewDailyContentService(store.DailyContent())

	// The seed data has no dated entries, so today always falls through to
	// the random pick.
	c, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, c.Body)
}

func TestDailyContent_ByType(t *testing.T) {
	store := newSeededStore(t)
	svc := NewDailyContentService(store.DailyContent())

	verses, err := svc.ByType(context.Background(), dailycontent.TypeVerse)
	require.NoError(t, err)
	require.Len(t, verses, 2)
	for _, v := range verses {
		assert.Equal(t, dailycontent.TypeVerse, v.Type)
	}

	_, err = svc.ByType(context.Background(), dailycontent.ContentType("meme"))
	assert.True(t, apperr.IsValidation(err))
}

func TestDailyContent_EmptyStore(t *testing.T) {
	store := memory.NewStore(0)
	svc := NewDailyContentService(store.DailyContent())

	_, err := svc.Random(context.Background())
	assert.True(t, apperr.IsNotFound(err))
}
