// Package input tracks which keys are held down. Browsers report both key
// down and key up, terminals only report presses, so a press can also be
// held for a limited time.
package input

import (
	"sort"
	"sync"
	"time"
)

// KeyState is the set of keys currently held. It is safe for concurrent use.
type KeyState struct {
	mu   sync.Mutex
	held map[string]time.Time
	now  func() time.Time
}

// NewKeyState returns an empty key set.
func NewKeyState() *KeyState {
	return &KeyState{
		held: map[string]time.Time{},
		now:  time.Now,
	}
}

// Press marks the key held until it is released.
func (ks *KeyState) Press(key string) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	ks.held[key] = time.Time{}
}

// PressFor marks the key held for d. Pressing again extends the hold, which is
// how terminal key repeat keeps a key down.
func (ks *KeyState) PressFor(key string, d time.Duration) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	ks.held[key] = ks.now().Add(d)
}

// Release marks the key as no longer held.
func (ks *KeyState) Release(key string) {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	delete(ks.held, key)
}

// Held reports whether the key is currently held down.
func (ks *KeyState) Held(key string) bool {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	until, ok := ks.held[key]
	if !ok {
		return false
	}
	if until.IsZero() {
		return true
	}
	if ks.now().Before(until) {
		return true
	}
	delete(ks.held, key)
	return false
}

// Keys returns the held keys in sorted order, nil when none are held.
func (ks *KeyState) Keys() []string {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	var keys []string
	now := ks.now()
	for key, until := range ks.held {
		if until.IsZero() || now.Before(until) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Reset releases every key.
func (ks *KeyState) Reset() {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	ks.held = map[string]time.Time{}
}
