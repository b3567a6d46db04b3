//go:build linux

package vclock

import "sync/atomic"

// Pair holds the two ClockState slots and the atomic bookkeeping that makes
// one of them the "current" reader-visible state while the other is
// writer-exclusive scratch space.
//
// Ownership of a slot is not fixed: it flips over time. Model it as a state
// machine on readGen, not as an object-ownership relation — a writer never
// "owns" a slot in any lasting sense, it only has exclusive access to
// whichever slot readGen does not currently name, for the duration of one
// publish.
//
// readGen counts generations rather than toggling 0/1 directly: a 2-valued
// index would let a reader preempted between its two loads (see
// ReadCurrent) be fooled by two publishes that flip the index away and back
// to the same value, passing the retry check against a slot a writer is
// mid-overwriting for the *next* generation. Comparing the full counter
// closes that ABA window; only the low bit is used to pick a slot.
type Pair struct {
	slots     [2]ClockState
	readGen   atomic.Uint64 // ever-increasing; readGen&1 names the readable slot
	writeLock atomic.Bool   // non-blocking writer latch
}

// NewPair initialises both slots to the identity clock (speedup 1.0, fake
// origins equal to real origins) using reader for the genuine clock reads.
func NewPair(reader ClockReader) (*Pair, error) {
	init, err := ComposeState(reader, nil, 1.0)
	if err != nil {
		return nil, err
	}
	p := &Pair{}
	p.slots[0] = init
	p.slots[1] = init
	return p, nil
}

// ReadCurrent returns a self-consistent copy of the currently published
// state. It tolerates a writer concurrently overwriting the *other* slot:
// the reader re-checks readGen after computing its result and retries if it
// changed mid-read, so it never observes a slot that was torn by an
// in-flight publish of the next generation landing on the slot it just
// read.
func (p *Pair) ReadCurrent() ClockState {
	for {
		gen := p.readGen.Load()
		state := p.slots[gen&1]
		if p.readGen.Load() == gen {
			return state
		}
	}
}

// TryPublish attempts to compose and publish a new ClockState for
// newSpeedup. It never blocks: if the writer latch is already held (another
// thread is mid-publish), it returns immediately with ok=false and the
// caller's reader simply sees the last-published state. On success it
// returns the freshly published state.
func (p *Pair) TryPublish(reader ClockReader, newSpeedup float64) (state ClockState, ok bool, err error) {
	if !p.writeLock.CompareAndSwap(false, true) {
		return ClockState{}, false, nil
	}
	defer p.writeLock.Store(false)

	gen := p.readGen.Load()
	readerSlot := gen & 1
	scratchSlot := readerSlot ^ 1

	current := p.slots[readerSlot]
	next, err := ComposeState(reader, &current, newSpeedup)
	if err != nil {
		return ClockState{}, false, err
	}

	p.slots[scratchSlot] = next
	// Single atomic commit point: readers strictly before this store see
	// the old generation's slot, readers strictly after see the new one.
	// Advancing by one (never toggling) keeps every publish's generation
	// distinct, so ReadCurrent's retry check can't be fooled by a slot
	// index cycling back to a value a preempted reader already saw.
	p.readGen.Store(gen + 1)

	return next, true, nil
}
