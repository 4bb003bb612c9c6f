package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStubAdvance(t *testing.T) {
	start := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	c := NewStub(start)
	assert.Equal(t, start, c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}

func TestRealIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Real{}.Now().Location())
}

func TestRealHasMillisecondPrecision(t *testing.T) {
	for i := 0; i < 50; i++ {
		now := Real{}.Now()
		assert.Zero(t, now.Nanosecond()%int(time.Millisecond))
		assert.Equal(t, now, time.UnixMilli(now.UnixMilli()).UTC())
	}
}
