// Package authlock implements the settings-screen re-authentication lock: a
// per-second countdown that must reach zero before the seed placeholders may
// be shown again.
package authlock

import (
	"sync"
	"time"
)

// Countdown decrements once per interval while active. Remaining never goes
// below zero; Stop halts the ticker so it cannot fire after teardown.
type Countdown struct {
	mu        sync.Mutex
	interval  time.Duration
	remaining int
	running   bool
	stop      chan struct{}
}

// New creates an idle countdown ticking at interval (one second in the app;
// tests shorten it).
func New(interval time.Duration) *Countdown {
	return &Countdown{interval: interval}
}

// Start arms the countdown at seconds and begins ticking. Restarting resets
// the remaining time and replaces the previous ticker.
func (c *Countdown) Start(seconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stop != nil {
		close(c.stop)
	}
	c.remaining = seconds
	c.running = true
	c.stop = make(chan struct{})
	go c.run(c.stop)
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.remaining > 0 {
				c.remaining--
			}
			done := c.remaining == 0
			c.mu.Unlock()
			if done {
				return
			}
		}
	}
}

// Remaining returns the seconds left.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Active reports whether a countdown has been started and not stopped.
func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Unlocked reports whether the countdown has run to zero.
func (c *Countdown) Unlocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running && c.remaining == 0
}

// Stop cancels the countdown and deactivates the lock.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.running = false
	close(c.stop)
	c.stop = nil
}
