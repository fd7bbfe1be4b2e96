// Package clock supplies the time sources the managers use: current time,
// time-derived identifiers and simulated network latency.
package clock

import (
	"strconv"
	"sync"
	"time"
)

// Now is injected wherever the current time is read.
type Now func() time.Time

// Sleeper suspends for a simulated network round trip. Implementations must not
// return early: a pending simulated call always completes.
type Sleeper func(d time.Duration)

func RealSleep(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

func NoSleep(time.Duration) {}

// IDs hands out unix-millisecond identifiers, bumped by one when two calls land in the same millisecond.
type IDs struct {
	mu   sync.Mutex
	last int64
	now  Now
}

func NewIDs(now Now) *IDs {
	if now == nil {
		now = time.Now
	}
	return &IDs{now: now}
}

func (g *IDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	ms := g.now().UnixMilli()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	return strconv.FormatInt(ms, 10)
}

// DisplayDate is the date format used on posts, comments and join dates.
func DisplayDate(t time.Time) string { return t.Format(time.DateOnly) }
