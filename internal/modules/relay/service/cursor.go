package service

import "sync"

// Cursor tracks the highest processed update id so that redelivered or
// older updates are handled only once.
type Cursor struct {
	mu   sync.Mutex
	last int64
	seen bool
}

// Advance moves the cursor to id and reports whether id was new.
func (c *Cursor) Advance(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seen && id <= c.last {
		return false
	}
	c.last = id
	c.seen = true
	return true
}

// Last returns the highest processed id.
func (c *Cursor) Last() (int64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.seen
}
