package memory

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/curator/internal/store"
)

// Backend keeps slots in process memory. It backs CURATOR_STORE=memory and
// doubles as the fake used by tests.
type Backend struct {
	mu        sync.RWMutex
	slots     map[store.Slot]string
	lastWrite time.Time
	writes    int
	closed    bool
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{
		slots: make(map[store.Slot]string),
	}
}

// Get returns the value of slot.
func (b *Backend) Get(_ context.Context, slot store.Slot) (string, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return "", false, store.ErrClosed
	}
	v, ok := b.slots[slot]
	return v, ok, nil
}

// SetMany stores every value under one lock.
func (b *Backend) SetMany(_ context.Context, values map[store.Slot]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return store.ErrClosed
	}
	for slot, v := range values {
		b.slots[slot] = v
	}
	b.lastWrite = time.Now()
	b.writes++
	return nil
}

// Delete removes slots; missing slots are ignored.
func (b *Backend) Delete(_ context.Context, slots ...store.Slot) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return store.ErrClosed
	}
	for _, slot := range slots {
		delete(b.slots, slot)
	}
	return nil
}

// Ping reports whether the backend is still open.
func (b *Backend) Ping(_ context.Context) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return store.ErrClosed
	}
	return nil
}

// Close marks the backend unusable.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	return nil
}

// Put seeds a raw value, bypassing SetMany accounting.
func (b *Backend) Put(slot store.Slot, value string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.slots[slot] = value
}

// Raw returns the stored text of slot.
func (b *Backend) Raw(slot store.Slot) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.slots[slot]
	return v, ok
}

// Writes returns how many SetMany calls succeeded.
func (b *Backend) Writes() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.writes
}

// LastWrite returns the time of the last successful SetMany.
func (b *Backend) LastWrite() time.Time {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.lastWrite
}
