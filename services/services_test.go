package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"pureHeartAPI/internal/repository/memory"
	"pureHeartAPI/internal/user"
)

// newSeededStore returns a zero-latency in-memory store loaded with the
// bundled seed data.
func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore(0)
	require.NoError(t, store.Seed())
	return store
}

func createUser(t *testing.T, store *memory.Store, u *user.User) *user.User {
	t.Helper()
	created, err := store.Users().Create(context.Background(), u)
	require.NoError(t, err)
	return created
}
