//go:build linux

package main

/*
#include <time.h>
#include <sys/time.h>
#include <errno.h>
*/
import "C"

import (
	gotime "time"
	"unsafe"

	"github.com/riftlab/timevirt/pkg/vclock"
)

// ticksPerSec is the CLOCKS_PER_SEC the target's C runtime assumes clock(3)
// reports against. POSIX platforms fix this at 1,000,000 regardless of the
// kernel's actual CLK_TCK.
const ticksPerSec = 1_000_000

//export time
func time(arg *C.time_t) C.time_t {
	errno := savedErrno()
	defer restoreErrno(errno)

	ensureInit()
	sec := oracle.WallSeconds()
	if arg != nil {
		*arg = C.time_t(sec)
	}
	return C.time_t(sec)
}

//export gettimeofday
func gettimeofday(tv *C.struct_timeval, tz unsafe.Pointer) C.int {
	errno := savedErrno()
	defer restoreErrno(errno)

	ensureInit()
	sec, usec := oracle.WallTimeval()
	if tv != nil {
		tv.tv_sec = C.__time_t(sec)
		tv.tv_usec = C.__suseconds_t(usec)
	}
	return 0
}

//export clock_gettime
func clock_gettime(clkID C.clockid_t, tp *C.struct_timespec) C.int {
	errno := savedErrno()

	ensureInit()
	ts, err := oracle.ClockReadRaw(int32(clkID))
	if err != nil {
		// Leave EINVAL in place for the caller — do not restore the
		// saved errno here, or it would clobber this on the way out.
		restoreErrno(C.int(C.EINVAL))
		return -1
	}
	if tp != nil {
		tp.tv_sec = C.__time_t(ts.Sec)
		tp.tv_nsec = C.__syscall_slong_t(ts.Nsec)
	}
	restoreErrno(errno)
	return 0
}

//export clock
func clock() C.clock_t {
	errno := savedErrno()
	defer restoreErrno(errno)

	ensureInit()
	return C.clock_t(oracle.ProcessCPUTicks(ticksPerSec))
}

//export __set_speedup
func __set_speedup(speedup C.float) {
	ensureInit()
	override.Set(float32(speedup))
}

//export __sleep_for_nanos
func __sleep_for_nanos(nanos C.ulonglong) {
	gotime.Sleep(gotime.Duration(uint64(nanos)))
}

//export __real_clock_gettime
func __real_clock_gettime(clkID C.int, tp *C.struct_timespec) C.int {
	ensureInit()
	reader, err := newCGOClockReader()
	if err != nil {
		return -1
	}
	ts, err := reader.Read(vclock.FoldClockID(int32(clkID)))
	if err != nil {
		return -1
	}
	if tp != nil {
		tp.tv_sec = C.__time_t(ts.Sec)
		tp.tv_nsec = C.__syscall_slong_t(ts.Nsec)
	}
	return 0
}
