package flow

import (
	"sync"
	"time"
)

// Countdown is a tick-driven timer counting whole seconds down to zero.
// The owner holds at most one active countdown and must Cancel it on every
// transition that stops observing it; reaching zero freezes the remaining
// value and fires onExpire exactly once.
type Countdown struct {
	mu        sync.Mutex
	remaining int
	cancelled bool
	stop      chan struct{}
}

// StartCountdown begins ticking immediately. interval is how often one
// "second" elapses; production code passes time.Second, tests shrink it.
// onTick receives the remaining count after each tick. Both callbacks run on
// the countdown's goroutine.
func StartCountdown(seconds int, interval time.Duration, onTick func(remaining int), onExpire func()) *Countdown {
	c := &Countdown{
		remaining: seconds,
		stop:      make(chan struct{}),
	}

	go c.run(interval, onTick, onExpire)

	return c
}

func (c *Countdown) run(interval time.Duration, onTick func(int), onExpire func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			remaining, expired := c.tick()
			if remaining < 0 {
				return
			}
			if onTick != nil {
				onTick(remaining)
			}
			if expired {
				if onExpire != nil {
					onExpire()
				}
				return
			}
		}
	}
}

// tick decrements once. It returns -1 when the countdown was cancelled
// between the ticker firing and the state update.
func (c *Countdown) tick() (remaining int, expired bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelled || c.remaining == 0 {
		return -1, false
	}

	c.remaining--
	return c.remaining, c.remaining == 0
}

// Remaining returns the current count. It stays frozen at zero after expiry.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Cancel stops the countdown. Safe to call more than once.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelled {
		return
	}
	c.cancelled = true
	close(c.stop)
}
