package clock

import (
	"sync"
	"time"
)

// Clock abstracts time retrieval so stores and services are deterministic in tests.
type Clock interface {
	Now() time.Time
}

// Real returns the wall clock in UTC at millisecond precision, the finest
// resolution every store keeps.
type Real struct{}

func (Real) Now() time.Time { return time.Now().UTC().Truncate(time.Millisecond) }

// Stub returns a settable time. Safe for concurrent use.
type Stub struct {
	mu  sync.Mutex
	now time.Time
}

// NewStub creates a Stub set to t.
func NewStub(t time.Time) *Stub {
	return &Stub{now: t}
}

func (c *Stub) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Stub) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
