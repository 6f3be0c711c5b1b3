package transport

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(clock *fakeClock) *RateLimiter {
	rl := NewRateLimiter(rate.Limit(1), 1)
	rl.now = clock.Now
	rl.lastSweep = clock.Now()
	return rl
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newTestLimiter(clock)

	for i := 0; i < 100; i++ {
		rl.GetLimiter(fmt.Sprintf("10.0.0.%d", i))
	}
	assert.Equal(t, 100, rl.size())

	clock.Advance(limiterIdleTTL / 2)
	active := rl.GetLimiter("10.0.0.1")

	clock.Advance(limiterIdleTTL / 2)
	rl.GetLimiter("192.168.1.1")

	// only the client seen within the ttl survives, plus the new one
	assert.Equal(t, 2, rl.size())
	assert.Same(t, active, rl.GetLimiter("10.0.0.1"))
}

func TestRateLimiter_KeepsBucketWithinTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	rl := newTestLimiter(clock)

	first := rl.GetLimiter("10.0.0.1")
	assert.True(t, first.Allow())
	assert.False(t, rl.GetLimiter("10.0.0.1").Allow())

	clock.Advance(limiterIdleTTL - time.Second)
	assert.Same(t, first, rl.GetLimiter("10.0.0.1"))
	assert.Equal(t, 1, rl.size())
}
