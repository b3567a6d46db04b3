//go:build linux

package vclock

import "golang.org/x/sys/unix"

// ClockID identifies one of the four base clocks this package virtualizes.
// Every clock id recognised by clock_gettime(2) folds onto exactly one of
// these, or onto Invalid if it is not recognised at all.
type ClockID int

const (
	Invalid ClockID = iota
	Wall
	Mono
	ProcCPU
	ThreadCPU
)

// NumBaseClocks is the size of the per-clock arrays carried by ClockState.
const NumBaseClocks = 4

// index returns the slot this base clock occupies inside a ClockState's
// per-clock arrays. Invalid has no slot.
func (c ClockID) index() int {
	switch c {
	case Wall:
		return 0
	case Mono:
		return 1
	case ProcCPU:
		return 2
	case ThreadCPU:
		return 3
	default:
		return -1
	}
}

func (c ClockID) String() string {
	switch c {
	case Wall:
		return "WALL"
	case Mono:
		return "MONO"
	case ProcCPU:
		return "PROC_CPU"
	case ThreadCPU:
		return "THREAD_CPU"
	default:
		return "INVALID"
	}
}

// FoldClockID folds a raw clock_gettime(2) clock id onto one of the four
// base clocks. Unrecognised ids fold to Invalid.
//
// The table mirrors the original shim's base_clock() switch exactly:
// raw/coarse/boot/alarm variants of the monotonic family fold to Mono,
// coarse/alarm variants of realtime fold to Wall.
func FoldClockID(raw int32) ClockID {
	switch raw {
	case unix.CLOCK_REALTIME:
		return Wall
	case unix.CLOCK_MONOTONIC:
		return Mono
	case unix.CLOCK_PROCESS_CPUTIME_ID:
		return ProcCPU
	case unix.CLOCK_THREAD_CPUTIME_ID:
		return ThreadCPU
	case unix.CLOCK_MONOTONIC_RAW:
		return Mono
	case unix.CLOCK_REALTIME_COARSE:
		return Wall
	case unix.CLOCK_MONOTONIC_COARSE:
		return Mono
	case unix.CLOCK_BOOTTIME:
		return Mono
	case unix.CLOCK_REALTIME_ALARM:
		return Wall
	case unix.CLOCK_BOOTTIME_ALARM:
		return Mono
	default:
		return Invalid
	}
}

// RawClockID returns the raw clock_gettime(2) id for a base clock, the
// inverse of the identity (not alias) direction of FoldClockID. Used by
// ClockReader implementations to ask the platform for a genuine reading of
// a base clock.
func (c ClockID) RawClockID() int32 {
	switch c {
	case Wall:
		return unix.CLOCK_REALTIME
	case Mono:
		return unix.CLOCK_MONOTONIC
	case ProcCPU:
		return unix.CLOCK_PROCESS_CPUTIME_ID
	case ThreadCPU:
		return unix.CLOCK_THREAD_CPUTIME_ID
	default:
		return -1
	}
}
