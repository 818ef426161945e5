package history

import (
	"sync"

	"geotrail/internal/domain"
	"geotrail/pkg/e"
)

// DefaultCapacity is the history cap: on append the tail is trimmed so the
// sequence never exceeds it.
const DefaultCapacity = 30

// Manager owns the bounded, newest-first sequence of location records.
// It is the only writer of the sequence; handlers and the poller share one
// instance passed by reference (no package-level store). Every mutation is a
// single structural edit under the lock, and every mutation notifies
// subscribers.
type Manager struct {
	mu       sync.RWMutex
	capacity int
	records  []domain.LocationRecord

	subMu   sync.Mutex
	subs    map[int]chan struct{}
	nextSub int
}

func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Manager{
		capacity: capacity,
		records:  make([]domain.LocationRecord, 0, capacity),
		subs:     make(map[int]chan struct{}),
	}
}

// Append inserts the record at the head. If the sequence would exceed the
// cap, the oldest records are dropped from the tail.
func (m *Manager) Append(rec domain.LocationRecord) {
	m.mu.Lock()
	m.records = append([]domain.LocationRecord{rec}, m.records...)
	if len(m.records) > m.capacity {
		m.records = m.records[:m.capacity]
	}
	m.mu.Unlock()

	m.notify()
}

// RemoveAt removes the record at previousIndex from the previous view, i.e.
// records[previousIndex+1]. The head (current location) is unreachable by
// construction. Out-of-range input leaves the history untouched.
func (m *Manager) RemoveAt(previousIndex int) error {
	m.mu.Lock()
	if previousIndex < 0 || previousIndex >= len(m.records)-1 {
		m.mu.Unlock()
		return e.ErrInvalidIndex
	}
	i := previousIndex + 1
	m.records = append(m.records[:i], m.records[i+1:]...)
	m.mu.Unlock()

	m.notify()
	return nil
}

// ClearPrevious drops every record except the head. No-op on an empty
// history; the current location is never removed by this operation.
func (m *Manager) ClearPrevious() {
	m.mu.Lock()
	if len(m.records) <= 1 {
		m.mu.Unlock()
		return
	}
	m.records = m.records[:1]
	m.mu.Unlock()

	m.notify()
}

// Snapshot recomputes the current/previous partition from the sequence.
// The returned slices are copies; callers can hold them across mutations.
func (m *Manager) Snapshot() domain.Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := domain.Snapshot{Previous: []domain.LocationRecord{}}
	if len(m.records) == 0 {
		return snap
	}

	cur := m.records[0]
	snap.Current = &cur
	snap.Previous = make([]domain.LocationRecord, len(m.records)-1)
	copy(snap.Previous, m.records[1:])
	return snap
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

// Subscribe registers a mutation listener. The returned channel receives a
// non-blocking signal after every mutation; the cancel func unregisters it.
func (m *Manager) Subscribe() (<-chan struct{}, func()) {
	m.subMu.Lock()
	defer m.subMu.Unlock()

	id := m.nextSub
	m.nextSub++
	ch := make(chan struct{}, 1)
	m.subs[id] = ch

	cancel := func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		delete(m.subs, id)
	}
	return ch, cancel
}

func (m *Manager) notify() {
	m.subMu.Lock()
	defer m.subMu.Unlock()
	for _, ch := range m.subs {
		select {
		case ch <- struct{}{}:
		default: // subscriber is behind, it will observe the latest state anyway
		}
	}
}
