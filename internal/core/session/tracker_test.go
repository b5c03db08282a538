package session_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/smart-ledger/ledger-backend/internal/core/session"
	"github.com/stretchr/testify/assert"
)

func TestTrackerFiresOnceAfterTimeout(t *testing.T) {
	var fired atomic.Int32
	tr := session.NewTracker(20 * time.Millisecond)
	tr.Start(func() { fired.Add(1) })

	assert.Eventually(t, func() bool { return fired.Load() == 1 },
		time.Second, 5*time.Millisecond)

	// Once expired the tracker is stopped; nothing fires again.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
	assert.False(t, tr.Active())
}

func TestTouchResetsCountdown(t *testing.T) {
	var fired atomic.Int32
	tr := session.NewTracker(60 * time.Millisecond)
	tr.Start(func() { fired.Add(1) })

	for i := 0; i < 4; i++ {
		time.Sleep(25 * time.Millisecond)
		tr.Touch()
	}
	// 100ms elapsed but activity kept resetting the window.
	assert.Equal(t, int32(0), fired.Load())
	assert.True(t, tr.Active())
	tr.Stop()
}

func TestStopPreventsCallback(t *testing.T) {
	var fired atomic.Int32
	tr := session.NewTracker(20 * time.Millisecond)
	tr.Start(func() { fired.Add(1) })
	tr.Stop()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
	assert.Zero(t, tr.TimeRemaining())
}

func TestStopIsIdempotent(t *testing.T) {
	tr := session.NewTracker(time.Minute)
	tr.Stop() // stopping a never-started tracker is a no-op
	tr.Start(func() {})
	tr.Stop()
	tr.Stop()
	assert.False(t, tr.Active())
}

func TestTouchAfterStopIsNoOp(t *testing.T) {
	var fired atomic.Int32
	tr := session.NewTracker(20 * time.Millisecond)
	tr.Start(func() { fired.Add(1) })
	tr.Stop()
	tr.Touch()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestManagerExpiresIdleUser(t *testing.T) {
	expired := make(chan string, 1)
	m := session.NewManager(20*time.Millisecond, func(userID string) {
		expired <- userID
	})
	defer m.Close()

	m.Touch("user-1")
	assert.True(t, m.Active("user-1"))

	select {
	case id := <-expired:
		assert.Equal(t, "user-1", id)
	case <-time.After(time.Second):
		t.Fatal("session never expired")
	}
	assert.False(t, m.Active("user-1"))
}

func TestManagerEndStopsTracking(t *testing.T) {
	expired := make(chan string, 1)
	m := session.NewManager(20*time.Millisecond, func(userID string) {
		expired <- userID
	})
	defer m.Close()

	m.Touch("user-1")
	m.End("user-1")

	select {
	case <-expired:
		t.Fatal("expiry callback fired after explicit logout")
	case <-time.After(60 * time.Millisecond):
	}
	assert.False(t, m.Active("user-1"))
}
