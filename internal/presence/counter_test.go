package presence

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterJoinLeave(t *testing.T) {
	c := NewCounter()

	assert.EqualValues(t, 0, c.Count("r1"))

	assert.EqualValues(t, 1, c.OnJoin("r1"))
	assert.EqualValues(t, 2, c.OnJoin("r1"))
	assert.EqualValues(t, 1, c.OnJoin("r2"))

	assert.EqualValues(t, 1, c.OnLeave("r1"))
	assert.EqualValues(t, 1, c.Count("r1"))
	assert.EqualValues(t, 1, c.Count("r2"))
}

func TestCounterNoLowerBound(t *testing.T) {
	c := NewCounter()

	// A decrement on a never-joined room goes negative; the counter is
	// pass-through, not a semaphore.
	assert.EqualValues(t, -1, c.OnLeave("ghost"))
	assert.EqualValues(t, -2, c.OnLeave("ghost"))
	assert.EqualValues(t, -2, c.Count("ghost"))
}

func TestCounterConcurrent(t *testing.T) {
	c := NewCounter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.OnJoin("busy")
		}()
		go func() {
			defer wg.Done()
			c.OnLeave("busy")
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 0, c.Count("busy"))
}
