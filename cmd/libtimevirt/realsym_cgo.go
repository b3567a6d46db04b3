//go:build linux

package main

/*
#define _GNU_SOURCE
#include <dlfcn.h>
#include <time.h>
#include <errno.h>
#include <stdlib.h>

typedef int (*clock_gettime_fn)(clockid_t, struct timespec *);

static clock_gettime_fn real_clock_gettime_ptr = NULL;

// resolve_real_clock_gettime performs the one dlsym(RTLD_NEXT, ...) lookup
// this shim needs: the genuine clock_gettime implementation further down
// the dynamic linker's search order, i.e. libc's. Every other intercepted
// entry point (time, gettimeofday, clock) is implemented in terms of this
// single genuine symbol, exactly as the original source's base_clock()
// design reduces every accepted clock id down to one of four real
// clock_gettime calls.
static int resolve_real_clock_gettime(void) {
    if (real_clock_gettime_ptr != NULL) {
        return 0;
    }
    void *sym = dlsym(RTLD_NEXT, "clock_gettime");
    if (sym == NULL) {
        return -1;
    }
    real_clock_gettime_ptr = (clock_gettime_fn)sym;
    return 0;
}

static int call_real_clock_gettime(clockid_t clk_id, struct timespec *tp) {
    return real_clock_gettime_ptr(clk_id, tp);
}

static int get_errno(void) { return errno; }
static void set_errno(int e) { errno = e; }
*/
import "C"

import (
	"fmt"
	"sync"

	"github.com/riftlab/timevirt/pkg/vclock"
)

var (
	resolveOnce sync.Once
	resolveErr  error
)

// cgoClockReader implements vclock.ClockReader by calling the genuine
// clock_gettime resolved via dlsym(RTLD_NEXT, ...), the literal Go
// rendition of the base spec's §4.A real-symbol resolver.
type cgoClockReader struct{}

// newCGOClockReader resolves the genuine clock_gettime symbol on first call
// and returns vclock.ErrSymbolMissing if dlsym(RTLD_NEXT, ...) could not find
// one further down the search order. The caller (initShim) treats this as
// fatal: the shim cannot compute fake time without a genuine reading to
// project from, and there is no useful fallback.
func newCGOClockReader() (*cgoClockReader, error) {
	resolveOnce.Do(func() {
		if C.resolve_real_clock_gettime() != 0 {
			resolveErr = vclock.ErrSymbolMissing
		}
	})
	if resolveErr != nil {
		return nil, resolveErr
	}
	return &cgoClockReader{}, nil
}

func (cgoClockReader) Read(c vclock.ClockID) (vclock.Timespec, error) {
	raw := c.RawClockID()
	if raw < 0 {
		return vclock.Timespec{}, fmt.Errorf("libtimevirt: %s is not a base clock", c)
	}

	var ts C.struct_timespec
	if rc := C.call_real_clock_gettime(C.clockid_t(raw), &ts); rc != 0 {
		return vclock.Timespec{}, fmt.Errorf("libtimevirt: clock_gettime(%s) failed", c)
	}

	return vclock.Timespec{Sec: int64(ts.tv_sec), Nsec: int64(ts.tv_nsec)}, nil
}

// savedErrno captures the caller's errno so it can be restored after the
// shim does its own (non-erroring, in practice) work — the target inspects
// errno after unrelated calls and must never observe it perturbed by time
// virtualization.
func savedErrno() C.int {
	return C.get_errno()
}

func restoreErrno(e C.int) {
	C.set_errno(e)
}
