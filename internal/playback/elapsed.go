// ABOUTME: Shared elapsed-time cell
// ABOUTME: Lock-protected duration written by the worker and read by controller frames
package playback

import (
	"sync"
	"time"
)

// elapsedCell holds the elapsed playback time shared between the
// worker and the controller. The worker is the only writer: it samples
// the sink position once per polling tick and resets to zero when a
// Stop is applied. Readers copy the value out; neither side ever holds
// the lock across a blocking operation.
type elapsedCell struct {
	mu sync.Mutex
	d  time.Duration
}

func (c *elapsedCell) set(d time.Duration) {
	c.mu.Lock()
	c.d = d
	c.mu.Unlock()
}

func (c *elapsedCell) reset() {
	c.set(0)
}

func (c *elapsedCell) get() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d
}
