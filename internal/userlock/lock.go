// Package userlock serializes ledger read-modify-write sequences per user so
// that two concurrent point-earning requests cannot both increment from the
// same streak base.
package userlock

import "sync"

type userMutex struct {
	mu sync.Mutex
}

// Keyed hands out one mutex per user id. Mutexes are created lazily and kept
// for the life of the process; the per-user footprint is a single mutex.
type Keyed struct {
	locks sync.Map // map[int]*userMutex
}

func New() *Keyed {
	return &Keyed{}
}

func (k *Keyed) get(userID int) *userMutex {
	if v, ok := k.locks.Load(userID); ok {
		return v.(*userMutex)
	}
	actual, _ := k.locks.LoadOrStore(userID, &userMutex{})
	return actual.(*userMutex)
}

func (k *Keyed) Lock(userID int) {
	k.get(userID).mu.Lock()
}

func (k *Keyed) Unlock(userID int) {
	if v, ok := k.locks.Load(userID); ok {
		v.(*userMutex).mu.Unlock()
	}
}

// WithLock runs fn while holding the user's lock.
func (k *Keyed) WithLock(userID int, fn func() error) error {
	k.Lock(userID)
	defer k.Unlock(userID)
	return fn()
}
