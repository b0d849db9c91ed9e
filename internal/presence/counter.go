// Package presence keeps per-room counters of live connections. The
// counters are purely observational: nothing admits or rejects joins or
// messages based on them.
package presence

import (
	"sync"
	"sync/atomic"
)

type Counter struct {
	rooms sync.Map // website -> *atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) counter(website string) *atomic.Int64 {
	if v, ok := c.rooms.Load(website); ok {
		return v.(*atomic.Int64)
	}
	v, _ := c.rooms.LoadOrStore(website, new(atomic.Int64))
	return v.(*atomic.Int64)
}

func (c *Counter) OnJoin(website string) int64 {
	return c.counter(website).Add(1)
}

// OnLeave decrements without a lower bound; a count below zero is allowed,
// this is a pass-through counter, not a semaphore.
func (c *Counter) OnLeave(website string) int64 {
	return c.counter(website).Add(-1)
}

func (c *Counter) Count(website string) int64 {
	if v, ok := c.rooms.Load(website); ok {
		return v.(*atomic.Int64).Load()
	}
	return 0
}
