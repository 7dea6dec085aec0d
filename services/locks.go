package services

import (
	"fmt"
	"sync"
)

// EntityLocks serializes engine operations per entity. The store models
// network latency, not isolation, so two concurrent mutations of the same
// user or partnership must queue here rather than race read-modify-write.
type EntityLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewEntityLocks() *EntityLocks {
	return &EntityLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the named lock and returns its release func.
func (l *EntityLocks) Lock(key string) func() {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func userKey(id int) string        { return fmt.Sprintf("user:%d", id) }
func partnershipKey(id int) string { return fmt.Sprintf("partnership:%d", id) }
