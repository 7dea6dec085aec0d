package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/user"
)

func TestSeed(t *testing.T) {
	store := NewStore(0)
	require.NoError(t, store.Seed())

	users, err := store.Users().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 6)

	tasks, err := store.Tasks().List(context.Background())
	require.NoError(t, err)
	assert.Len(t, tasks, 10)

	logs, err := store.UrgeLogs().ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, logs, 4)
}

func TestCreate_IDsContinuePastSeed(t *testing.T) {
	store := NewStore(0)
	require.NoError(t, store.Seed())

	created, err := store.Users().Create(context.Background(), &user.User{DisplayName: "Tariq"})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	next, err := store.Users().Create(context.Background(), &user.User{DisplayName: "Zayd"})
	require.NoError(t, err)
	assert.Equal(t, 8, next.ID)
}

func TestGet_Unknown(t *testing.T) {
	store := NewStore(0)

	_, err := store.Users().Get(context.Background(), 1)
	assert.True(t, apperr.IsNotFound(err))

	_, err = store.Tasks().Get(context.Background(), 1)
	assert.True(t, apperr.IsNotFound(err))

	_, err = store.Partnerships().Get(context.Background(), 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestClonesIsolateCallers(t *testing.T) {
	store := NewStore(0)
	require.NoError(t, store.Seed())

	first, err := store.Users().Get(context.Background(), 1)
	require.NoError(t, err)

	// Mutating a returned record must not leak into the store.
	first.DisplayName = "mutated"
	first.Badges = append(first.Badges, "fake badge")

	second, err := store.Users().Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Ahmad", second.DisplayName)
	assert.NotContains(t, second.Badges, "fake badge")
}

func TestUpdate_PreservesCreatedAt(t *testing.T) {
	store := NewStore(0)

	created, err := store.Users().Create(context.Background(), &user.User{DisplayName: "Tariq"})
	require.NoError(t, err)

	created.Points = 50
	updated, err := store.Users().Update(context.Background(), created)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Points)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestDelay_RespectsCancellation(t *testing.T) {
	store := NewStore(500 * time.Millisecond)
	require.NoError(t, store.Seed())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Users().Get(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
