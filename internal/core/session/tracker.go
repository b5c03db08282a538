// Package session implements the inactivity timeout tracker. A Tracker is a
// two-state machine (armed / stopped): Start arms a countdown, any activity
// touch resets it to the full window, and expiry fires the supplied callback
// exactly once. Stop cancels deterministically on every exit path and is safe
// to race with expiry.
package session

import (
	"sync"
	"time"
)

// DefaultTimeout is the inactivity window before a session expires.
const DefaultTimeout = 30 * time.Minute

// Tracker counts down a fixed inactivity window for one session.
type Tracker struct {
	mu           sync.Mutex
	timeout      time.Duration
	timer        *time.Timer
	armed        bool
	onExpired    func()
	lastActivity time.Time
}

// NewTracker creates a stopped tracker with the given inactivity window.
// A non-positive timeout falls back to DefaultTimeout.
func NewTracker(timeout time.Duration) *Tracker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Tracker{timeout: timeout}
}

// Start arms the tracker and begins the countdown. Starting an already armed
// tracker replaces its callback and resets the countdown.
func (t *Tracker) Start(onExpired func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onExpired = onExpired
	t.armed = true
	t.resetLocked()
}

// Touch registers activity: the countdown resets to the full window.
// Touching a stopped tracker is a no-op.
func (t *Tracker) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.armed {
		return
	}
	t.resetLocked()
}

// Stop disarms the tracker, cancels the pending countdown, and releases the
// timer. Stopping an already stopped tracker is a no-op. A Stop racing the
// countdown expiry guarantees the callback fires at most once.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.armed = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Active reports whether the tracker is armed with time remaining.
func (t *Tracker) Active() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.armed && time.Since(t.lastActivity) < t.timeout
}

// TimeRemaining returns how long until expiry, or zero when stopped/expired.
func (t *Tracker) TimeRemaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.armed {
		return 0
	}
	remaining := t.timeout - time.Since(t.lastActivity)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (t *Tracker) resetLocked() {
	t.lastActivity = time.Now()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.timeout, t.expire)
}

func (t *Tracker) expire() {
	t.mu.Lock()
	// The armed check is the double-fire guard: Stop may have won the race
	// after the timer fired but before we took the lock.
	if !t.armed {
		t.mu.Unlock()
		return
	}
	t.armed = false
	t.timer = nil
	onExpired := t.onExpired
	t.mu.Unlock()

	if onExpired != nil {
		onExpired()
	}
}
