package booking

import "sync"

// providerLocks hands out one mutex per provider ID so that the
// check-then-write sequence of a booking mutation is serialized per
// provider. Without this, two concurrent requests can both see
// isAvailable==true and double-book the same window.
//
// This covers a single process. A multi-instance deployment needs a
// shared lock or an optimistic conflict check at write time; callers
// surface that case as a raceLost error.
type providerLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *providerLocks) forProvider(providerID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := l.locks[providerID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[providerID] = lock
	}
	return lock
}
