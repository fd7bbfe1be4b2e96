package catalog

import (
	"sync"
	"time"
)

// DealsWindow is where the deals countdown starts.
const DealsWindow = 12*time.Hour + 45*time.Minute

// Countdown is the deals timer; the caller drives it with Tick once per second.
type Countdown struct {
	mu        sync.Mutex
	remaining time.Duration
}

func NewCountdown() *Countdown { return &Countdown{remaining: DealsWindow} }

// Tick decrements one second and stops at zero.
func (c *Countdown) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.remaining >= time.Second {
		c.remaining -= time.Second
		return
	}
	c.remaining = 0
}

func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Countdown) Parts() (hours, minutes, seconds int) {
	total := int(c.Remaining() / time.Second)
	return total / 3600, (total % 3600) / 60, total % 60
}

func (c *Countdown) Expired() bool { return c.Remaining() == 0 }
