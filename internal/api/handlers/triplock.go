package handlers

import "sync"

// tripLocker serializes plan regenerations per trip identifier. The planning
// pipeline itself is reentrant; the lock only prevents two concurrent
// regenerations of the same trip from racing on whatever the caller does with
// the result.
type tripLocker struct {
	mu    sync.Mutex
	trips map[string]*tripLock
}

type tripLock struct {
	mu   sync.Mutex
	refs int
}

func newTripLocker() *tripLocker {
	return &tripLocker{trips: make(map[string]*tripLock)}
}

// Lock blocks until the trip is free and returns its unlock function.
func (l *tripLocker) Lock(tripID string) func() {
	l.mu.Lock()
	entry, ok := l.trips[tripID]
	if !ok {
		entry = &tripLock{}
		l.trips[tripID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.trips, tripID)
		}
		l.mu.Unlock()
	}
}
