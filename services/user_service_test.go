package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pureHeartAPI/internal/apperr"
	"pureHeartAPI/internal/user"
)

func TestCreateUser(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUserService(store.Users(), store.Partnerships(), NewEntityLocks())

	created, err := svc.CreateUser(context.Background(), &user.CreateUserRequest{
		DisplayName: "  Tariq  ",
		Triggers:    []string{"stress"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tariq", created.DisplayName)
	assert.Equal(t, 1, created.Level)
	assert.Equal(t, 0, created.CurrentStreak)
	assert.NotNil(t, created.Badges)
	assert.NotNil(t, created.Vulnerabilities)
	assert.Equal(t, []string{"stress"}, created.Triggers)
}

func TestCreateUser_BlankName(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUserService(store.Users(), store.Partnerships(), NewEntityLocks())

	_, err := svc.CreateUser(context.Background(), &user.CreateUserRequest{DisplayName: "   "})
	assert.True(t, apperr.IsValidation(err))
}

func TestAddPoints(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUserService(store.Users(), store.Partnerships(), NewEntityLocks())

	u := createUser(t, store, &user.User{DisplayName: "Tariq", Level: 1})

	updated, err := svc.AddPoints(context.Background(), u.ID, 240)
	require.NoError(t, err)
	assert.Equal(t, 240, updated.Points)
	assert.Equal(t, 1, updated.Level)

	// Crossing 250 total moves the user to level 2.
	updated, err = svc.AddPoints(context.Background(), u.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, 260, updated.Points)
	assert.Equal(t, 2, updated.Level)
}

func TestAddPoints_NegativeRejected(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUserService(store.Users(), store.Partnerships(), NewEntityLocks())

	_, err := svc.AddPoints(context.Background(), 1, -5)
	assert.True(t, apperr.IsValidation(err))

	// Zero is a no-op, not an error.
	u, err := svc.AddPoints(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 320, u.Points)
}

func TestAvailablePartners(t *testing.T) {
	store := newSeededStore(t)
	locks := NewEntityLocks()
	users := NewUserService(store.Users(), store.Partnerships(), locks)
	partnerships := NewPartnershipService(store.Partnerships(), store.Users(), locks)
	ctx := context.Background()

	all, err := users.ListUsers(ctx)
	require.NoError(t, err)

	available, err := users.AvailablePartners(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, available, len(all)-1)
	for _, u := range available {
		assert.NotEqual(t, 1, u.ID)
	}

	// A pending partnership removes both members from everyone's pool.
	_, err = partnerships.Request(ctx, 2, 3)
	require.NoError(t, err)

	available, err = users.AvailablePartners(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, available, len(all)-3)
	for _, u := range available {
		assert.NotContains(t, []int{1, 2, 3}, u.ID)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	store := newSeededStore(t)
	svc := NewUserService(store.Users(), store.Partnerships(), NewEntityLocks())

	_, err := svc.GetUser(context.Background(), 9999)
	assert.True(t, apperr.IsNotFound(err))
}
