//go:build linux

package vclock

// ClockOrigin pairs the genuine ("real") reading of a base clock at the
// moment a ClockState was composed with the fake reading that clock must
// report at that same instant.
type ClockOrigin struct {
	Real Timespec
	Fake Timespec
}

// ClockState is an immutable snapshot of the shim's virtual-time bookkeeping:
// a speedup multiplier and, for each base clock, the (real, fake) origin
// pair the virtual-time formula needs to project forward from. Once
// published, a ClockState is never mutated — Pair composes a new one into
// scratch space instead.
type ClockState struct {
	Speedup float64
	Origins [NumBaseClocks]ClockOrigin
}

// fake projects this state's origin for clock c forward to the instant
// realNow, per the virtual-time formula:
//
//	fake(c) = fake_origin[c] + (real_now - real_origin[c]) * speedup
func (s *ClockState) fake(c ClockID, realNow Timespec) Timespec {
	o := s.Origins[c.index()]
	delta := realNow.Sub(o.Real)
	return o.Fake.Add(delta.ScaleBy(s.Speedup))
}

// ClockReader is what ComposeState needs from a genuine clock source
// (internal/realsym.SysReader, cmd/libtimevirt's cgoClockReader): a genuine
// reading of one base clock.
type ClockReader interface {
	Read(c ClockID) (Timespec, error)
}

// ComposeState builds the next ClockState for a new speedup, given the
// currently published state (nil when initialising the pair for the first
// time, in which case the new state's fake origins equal its real origins —
// an identity clock).
//
// This is a pure function: it performs the genuine clock reads it needs via
// reader and does not touch the pair's atomics. Pair.TryPublish calls it while
// holding the writer latch.
func ComposeState(reader ClockReader, prev *ClockState, newSpeedup float64) (ClockState, error) {
	var next ClockState
	next.Speedup = newSpeedup

	for idx := 0; idx < NumBaseClocks; idx++ {
		c := baseClockAt(idx)
		realNow, err := reader.Read(c)
		if err != nil {
			return ClockState{}, err
		}

		fake := realNow
		if prev != nil {
			fake = prev.fake(c, realNow)
		}

		next.Origins[idx] = ClockOrigin{Real: realNow, Fake: fake}
	}

	return next, nil
}

func baseClockAt(idx int) ClockID {
	switch idx {
	case 0:
		return Wall
	case 1:
		return Mono
	case 2:
		return ProcCPU
	default:
		return ThreadCPU
	}
}
