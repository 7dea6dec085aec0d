// Package memory is the in-process record store: keyed maps behind a single
// lock, sequential numeric ids, and an optional artificial latency on every
// call so callers behave as if a network sat between them and the data. It
// backs local development and every test double in the repo.
package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"pureHeartAPI/internal/dailycontent"
	"pureHeartAPI/internal/partnership"
	"pureHeartAPI/internal/task"
	"pureHeartAPI/internal/urgelog"
	"pureHeartAPI/internal/user"
)

type Store struct {
	latency time.Duration

	mu                sync.RWMutex
	users             map[int]*user.User
	nextUserID        int
	logs              map[int]*urgelog.UrgeLog
	nextLogID         int
	tasks             map[int]*task.Task
	nextTaskID        int
	completions       map[int]map[int]time.Time
	partnerships      map[int]*partnership.Partnership
	nextPartnershipID int
	messages          []*partnership.Message
	content           map[int]*dailycontent.Content
}

// NewStore creates an empty store. A latency of 0 disables the artificial
// delay; tests use 0, main wires STORE_LATENCY_MS.
func NewStore(latency time.Duration) *Store {
	return &Store{
		latency:           latency,
		users:             make(map[int]*user.User),
		nextUserID:        1,
		logs:              make(map[int]*urgelog.UrgeLog),
		nextLogID:         1,
		tasks:             make(map[int]*task.Task),
		nextTaskID:        1,
		completions:       make(map[int]map[int]time.Time),
		partnerships:      make(map[int]*partnership.Partnership),
		nextPartnershipID: 1,
		content:           make(map[int]*dailycontent.Content),
	}
}

// delay models network latency. It respects cancellation; everything after it
// runs under the store lock and does not block.
func (s *Store) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	d := s.latency/2 + time.Duration(rand.Int63n(int64(s.latency)))
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
