package service

import "sync"

// channelLocks serializes batch operations per channel. Different channels never block each other.
type channelLocks struct {
	mu    sync.Mutex
	locks map[int64]*channelLock
}

type channelLock struct {
	mu   sync.Mutex
	refs int
}

func newChannelLocks() *channelLocks {
	return &channelLocks{locks: make(map[int64]*channelLock)}
}

// Lock blocks until the channel is free and returns the matching unlock func.
func (l *channelLocks) Lock(channelID int64) func() {
	l.mu.Lock()
	lock, ok := l.locks[channelID]
	if !ok {
		lock = &channelLock{}
		l.locks[channelID] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()

	return func() {
		lock.mu.Unlock()

		l.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(l.locks, channelID)
		}
		l.mu.Unlock()
	}
}
