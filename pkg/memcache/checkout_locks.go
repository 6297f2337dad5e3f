package memcache

import (
	"sync"
)

// CheckoutLockStore serializes checkout attempts per account. Two
// concurrent startCheckout calls for the same account could both pass the
// "no active subscription" check before either row is committed; holding
// the account's lock across check-then-create closes that race.
type CheckoutLockStore interface {
	// Acquire blocks until the lock for key is held and returns the
	// release function. Release must be called exactly once.
	Acquire(key string) func()
}

type CheckoutLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewCheckoutLocks() *CheckoutLocks {
	return &CheckoutLocks{
		locks: make(map[string]*lockEntry),
	}
}

func (s *CheckoutLocks) Acquire(key string) func() {
	s.mu.Lock()
	e, ok := s.locks[key]
	if !ok {
		e = &lockEntry{}
		s.locks[key] = e
	}
	e.refs++
	s.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()
		s.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}
