package session

import (
	"sync"
	"time"
)

// Manager owns one inactivity tracker per authenticated user. The activity
// middleware touches the manager on every authenticated request; expiry or
// explicit logout drops the entry and notifies the expiry callback.
type Manager struct {
	mu        sync.Mutex
	timeout   time.Duration
	trackers  map[string]*Tracker
	onExpired func(userID string)
}

// NewManager creates a manager whose trackers use the given inactivity
// window. onExpired may be nil.
func NewManager(timeout time.Duration, onExpired func(userID string)) *Manager {
	return &Manager{
		timeout:   timeout,
		trackers:  make(map[string]*Tracker),
		onExpired: onExpired,
	}
}

// Touch registers activity for the user, arming a fresh tracker on first
// sight.
func (m *Manager) Touch(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.trackers[userID]; ok {
		t.Touch()
		return
	}
	t := NewTracker(m.timeout)
	m.trackers[userID] = t
	t.Start(func() { m.expire(userID) })
}

// End stops and removes the user's tracker (explicit logout).
func (m *Manager) End(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.trackers[userID]; ok {
		t.Stop()
		delete(m.trackers, userID)
	}
}

// Active reports whether the user currently has a live session tracker.
func (m *Manager) Active(userID string) bool {
	m.mu.Lock()
	t, ok := m.trackers[userID]
	m.mu.Unlock()
	return ok && t.Active()
}

// Close stops every tracker; used on server shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, t := range m.trackers {
		t.Stop()
		delete(m.trackers, id)
	}
}

func (m *Manager) expire(userID string) {
	m.mu.Lock()
	delete(m.trackers, userID)
	onExpired := m.onExpired
	m.mu.Unlock()
	if onExpired != nil {
		onExpired(userID)
	}
}
