package store

import (
	"sync"
)

// defaultBuffer is the subscriber channel capacity used by NewMemoryStore.
const defaultBuffer = 100

// MemoryStore is an in-memory implementation of [Store].
//
// Snapshots are keyed by form id, with new snapshots replacing previous
// values. Subscribers receive updates via buffered channels. Updates are
// sent non-blocking; if a subscriber's buffer is full, the update is dropped
// for that subscriber.
type MemoryStore struct {
	mu          sync.RWMutex
	snapshots   map[string]Snapshot
	subscribers map[chan Snapshot]struct{}
	subMu       sync.RWMutex
	buffer      int
}

// NewMemoryStore creates a store whose subscribers buffer 100 snapshots.
func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWithBuffer(defaultBuffer)
}

// NewMemoryStoreWithBuffer creates a store with the given subscriber buffer.
// Values below 1 are raised to 1.
func NewMemoryStoreWithBuffer(buffer int) *MemoryStore {
	if buffer < 1 {
		buffer = 1
	}
	return &MemoryStore{
		snapshots:   make(map[string]Snapshot),
		subscribers: make(map[chan Snapshot]struct{}),
		buffer:      buffer,
	}
}

// Update stores a [Snapshot] and notifies all subscribers.
func (m *MemoryStore) Update(snap Snapshot) {
	m.mu.Lock()
	m.snapshots[snap.FormID] = snap
	m.mu.Unlock()

	m.notifySubscribers(snap)
}

// Get returns the latest snapshot of a form.
func (m *MemoryStore) Get(formID string) (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap, ok := m.snapshots[formID]
	return snap, ok
}

// GetAll returns the latest snapshot of every form. Order is not guaranteed.
func (m *MemoryStore) GetAll() []Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Snapshot, 0, len(m.snapshots))
	for _, snap := range m.snapshots {
		out = append(out, snap)
	}
	return out
}

// Subscribe creates a new subscription and returns a channel for receiving
// snapshots.
//
// Caller must call [MemoryStore.Unsubscribe] when done to prevent resource leaks.
func (m *MemoryStore) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, m.buffer)

	m.subMu.Lock()
	m.subscribers[ch] = struct{}{}
	m.subMu.Unlock()

	return ch
}

// Unsubscribe removes a subscription and closes its channel.
// Safe to call multiple times or with an unknown channel.
func (m *MemoryStore) Unsubscribe(ch <-chan Snapshot) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	for subCh := range m.subscribers {
		if subCh == ch {
			delete(m.subscribers, subCh)
			close(subCh)
			break
		}
	}
}

// notifySubscribers sends snap to every subscriber without blocking.
func (m *MemoryStore) notifySubscribers(snap Snapshot) {
	m.subMu.RLock()
	defer m.subMu.RUnlock()

	for ch := range m.subscribers {
		select {
		case ch <- snap:
		default:
			// subscriber is slow, drop the snapshot
		}
	}
}
