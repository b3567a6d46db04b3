//go:build linux && vsleep

// Package vsleep is the opt-in implementation of the base spec's open
// sleep-virtualization question (§9). It is excluded from the default
// build — cmd/libtimevirt only wires its exports in when built with
// `-tags vsleep` — because the original source carries the corresponding
// nanosleep/usleep/sleep/clock_nanosleep overrides only as commented-out
// sketch code, and whether they were meant to ship is explicitly left
// ambiguous.
//
// The formula implemented here is the symmetric one the sketch implies:
// scale the requested duration down by the current speedup before handing
// it to the genuine sleep, then scale whatever time remained (on an
// interrupted sleep) back up by the same speedup before reporting it to
// the caller.
package vsleep

import "github.com/riftlab/timevirt/pkg/vclock"

// RealSleeper performs the genuine, unvirtualized sleep. *time.Duration is
// avoided here deliberately: this mirrors nanosleep(2)'s own
// (requested, remaining) shape so the scaling math stays a direct line-up
// with the original sketch rather than going through a Go-idiomatic
// Duration round trip that would obscure it.
type RealSleeper interface {
	Sleep(reqSec, reqNsec int64) (remSec, remNsec int64)
}

// Sleep scales req by 1/speedup before sleeping, and scales whatever
// remained after an interrupted sleep back up by speedup before returning
// it, so a caller computing "how much longer do I still need to sleep"
// sees virtual time, not real time.
func Sleep(sleeper RealSleeper, speedup float64, req vclock.Timespec) (remaining vclock.Timespec) {
	goal := req.ScaleBy(1 / speedup)
	remSec, remNsec := sleeper.Sleep(goal.Sec, goal.Nsec)
	rem := vclock.Timespec{Sec: remSec, Nsec: remNsec}
	return rem.ScaleBy(speedup)
}
