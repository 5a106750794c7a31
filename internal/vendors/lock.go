package vendors

import (
	"sync"

	"github.com/google/uuid"
)

// UserLocks serializes vendor resolution per user. Two concurrent
// extractions for the same user must never race to create the same
// normalized vendor name twice; resolution for different users proceeds
// in parallel.
type UserLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func NewUserLocks() *UserLocks {
	return &UserLocks{locks: make(map[uuid.UUID]*userLock)}
}

// Lock acquires the lock for userID and returns its release func. The
// release func must be called on every exit path.
func (l *UserLocks) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			ul.mu.Unlock()
			l.mu.Lock()
			ul.refs--
			if ul.refs == 0 {
				delete(l.locks, userID)
			}
			l.mu.Unlock()
		})
	}
}
