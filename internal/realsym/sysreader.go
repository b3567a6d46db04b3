//go:build linux

// Package realsym resolves and caches the genuine, unvirtualized clock
// reads the rest of the shim needs in order to compute fake time. On Linux
// this is a thin, direct wrapper over unix.ClockGettime — there is no lazy
// dynamic-linker symbol lookup to do here, because this package is Go code
// calling a Go-wrapped syscall directly, not C code resolving "the next
// definition of clock_gettime in the search order". That lazy-resolution
// concern only exists at the actual LD_PRELOAD boundary, implemented with
// cgo's dlsym in cmd/libtimevirt.
package realsym

import (
	"fmt"

	"golang.org/x/sys/unix"

	"github.com/riftlab/timevirt/pkg/vclock"
)

// SysReader implements vclock.ClockReader by calling unix.ClockGettime
// directly. It is stateless and safe for concurrent use.
type SysReader struct{}

// NewSysReader returns a ready-to-use SysReader.
func NewSysReader() *SysReader {
	return &SysReader{}
}

// Read returns a genuine reading of base clock c.
func (SysReader) Read(c vclock.ClockID) (vclock.Timespec, error) {
	raw := c.RawClockID()
	if raw < 0 {
		return vclock.Timespec{}, fmt.Errorf("realsym: %s is not a base clock", c)
	}

	var ts unix.Timespec
	if err := unix.ClockGettime(raw, &ts); err != nil {
		return vclock.Timespec{}, fmt.Errorf("realsym: clock_gettime(%s): %w", c, err)
	}

	return vclock.FromUnix(ts), nil
}

// ProcessCPUTicks returns the genuine process CPU time converted to ticks at
// ticksPerSec ticks per second, the unvirtualized counterpart of the
// oracle's clock(3) entry point.
func (s SysReader) ProcessCPUTicks(ticksPerSec int64) (int64, error) {
	ts, err := s.Read(vclock.ProcCPU)
	if err != nil {
		return 0, err
	}
	return ts.Sec*ticksPerSec + ts.Nsec*ticksPerSec/1_000_000_000, nil
}
