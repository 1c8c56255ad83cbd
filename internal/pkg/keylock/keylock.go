// Package keylock provides one exclusive lock per key. Holders of distinct
// keys never contend; entries are dropped once no goroutine holds or waits
// for them.
package keylock

import (
	"context"
	"sync"
)

type entry struct {
	sem  chan struct{}
	refs int
}

// KeyLock is safe for concurrent use. The zero value is not usable; call New.
type KeyLock[K comparable] struct {
	mu      sync.Mutex
	entries map[K]*entry
}

func New[K comparable]() *KeyLock[K] {
	return &KeyLock[K]{entries: make(map[K]*entry)}
}

// Lock blocks until the lock for key is held by the caller or ctx is done.
// On error the lock is not held.
func (l *KeyLock[K]) Lock(ctx context.Context, key K) error {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.release(key, e)
		return ctx.Err()
	}
}

// Unlock releases the lock for key. Unlocking a key that is not held panics.
func (l *KeyLock[K]) Unlock(key K) {
	l.mu.Lock()
	e, ok := l.entries[key]
	l.mu.Unlock()
	if !ok {
		panic("keylock: unlock of unlocked key")
	}

	select {
	case <-e.sem:
	default:
		panic("keylock: unlock of unlocked key")
	}
	l.release(key, e)
}

// Len returns the number of keys currently held or waited on.
func (l *KeyLock[K]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *KeyLock[K]) release(key K, e *entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}
