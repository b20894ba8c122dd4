package generator

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// WindowSize is the size of the ring of pending acknowledgements: 2^20,
// matching the original Java generator's default.
const WindowSize = 1 << 20

const windowMask = WindowSize - 1

// AcknowledgedCounterGenerator is a CounterGenerator whose LastInt() only
// advances once every ID in the contiguous prefix up to it has been
// acknowledged. Producers call NextInt() to reserve an ID; once the
// corresponding insert is durable they call Acknowledge(id). This lets
// concurrent readers avoid ever observing a key that has not actually been
// written yet.
//
// Grounded on original_source's AcknowledgedCounterGenerator.java: a fixed
// ring of booleans plus a limit, advanced by whichever goroutine manages to
// grab the advancement lock when it acknowledges a value that extends the
// contiguous run. The ring here is []int32 rather than []bool so every slot
// access goes through sync/atomic instead of relying on the mutex alone for
// visibility between the producer writing a slot and the (possibly
// different) goroutine that later folds it into limit.
type AcknowledgedCounterGenerator struct {
	*CounterGenerator

	advanceLock sync.Mutex
	window      [WindowSize]int32
	limit       int64
}

func NewAcknowledgedCounterGenerator(start int64) *AcknowledgedCounterGenerator {
	return &AcknowledgedCounterGenerator{
		CounterGenerator: NewCounterGenerator(start),
		limit:            start - 1,
	}
}

// LastInt returns the highest acknowledged ID, not the highest generated
// one. It is a relaxed read of limit: a caller may observe a stale value
// while another goroutine is mid-advance, which is fine since LastInt()
// must never overtake the true acknowledged boundary, but need not be
// perfectly current.
func (self *AcknowledgedCounterGenerator) LastInt() int64 {
	return atomic.LoadInt64(&self.limit)
}

func (self *AcknowledgedCounterGenerator) LastString() string {
	return fmt.Sprintf("%d", self.LastInt())
}

// Acknowledge records that the insertion of id is durable. It never blocks:
// if another goroutine already holds the advancement lock, this call only
// marks the window slot and returns, trusting that goroutine (or a later
// Acknowledge call) to fold the slot into limit.
func (self *AcknowledgedCounterGenerator) Acknowledge(id int64) {
	slot := id & windowMask

	if !atomic.CompareAndSwapInt32(&self.window[slot], 0, 1) {
		panic(NewErrorf("too many unacknowledged insertion keys: window overflowed at id %d", id))
	}

	if !self.advanceLock.TryLock() {
		return
	}
	defer self.advanceLock.Unlock()

	limit := atomic.LoadInt64(&self.limit)
	beforeFirstSlot := limit & windowMask
	index := limit + 1
	for index&windowMask != beforeFirstSlot {
		s := index & windowMask
		if atomic.LoadInt32(&self.window[s]) == 0 {
			break
		}
		atomic.StoreInt32(&self.window[s], 0)
		index++
	}
	atomic.StoreInt64(&self.limit, index-1)
}
