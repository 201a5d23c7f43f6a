package services

import "sync"

// EntityLocks serializes lifecycle operations per entity ID so concurrent
// reviews of the same work proof cannot interleave. The ledger's unique
// reference constraint remains the final guard against double payment.
type EntityLocks struct {
	mu    sync.Mutex
	locks map[string]*entityLock
}

type entityLock struct {
	mu   sync.Mutex
	refs int
}

// NewEntityLocks creates an empty lock set.
func NewEntityLocks() *EntityLocks {
	return &EntityLocks{locks: make(map[string]*entityLock)}
}

// Lock acquires the lock for the given ID, creating it on first use.
func (l *EntityLocks) Lock(id string) {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &entityLock{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
}

// Unlock releases the lock for the given ID and drops it once unused.
func (l *EntityLocks) Unlock(id string) {
	l.mu.Lock()
	e, ok := l.locks[id]
	if ok {
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
	}
	l.mu.Unlock()

	if ok {
		e.mu.Unlock()
	}
}
