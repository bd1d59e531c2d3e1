// Package impl contains the implementation of the application's business logic.
package impl

import (
	"sync"

	"kix/internal/usecase"
)

// ownerLocks serializes writes per cart/favorites owner so concurrent
// requests from the same shopper cannot interleave read-modify-write cycles.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[string]*sync.Mutex)}
}

// Lock acquires the lock for the given owner key and returns the unlock
// function. Locks are kept for the life of the process; the key space is
// bounded by active shoppers.
func (l *ownerLocks) Lock(key string) func() {
	l.mu.Lock()
	lock, ok := l.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[key] = lock
	}
	l.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}

// ownerKey returns the lock key for a session: the user ID for authenticated
// sessions, the device ID otherwise.
func ownerKey(session usecase.Session) string {
	if session.Identity.IsAuthenticated() {
		return "user:" + session.Identity.UserID.String()
	}

	return "device:" + session.DeviceID
}
