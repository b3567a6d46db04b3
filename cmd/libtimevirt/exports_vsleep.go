//go:build linux && vsleep

package main

/*
#include <time.h>
#include <errno.h>

static int real_nanosleep(const struct timespec *req, struct timespec *rem) {
    return nanosleep(req, rem);
}
*/
import "C"

import (
	"github.com/riftlab/timevirt/internal/vsleep"
	"github.com/riftlab/timevirt/pkg/vclock"
)

type cNanosleeper struct{}

func (cNanosleeper) Sleep(reqSec, reqNsec int64) (remSec, remNsec int64) {
	req := C.struct_timespec{tv_sec: C.__time_t(reqSec), tv_nsec: C.__syscall_slong_t(reqNsec)}
	var rem C.struct_timespec
	C.real_nanosleep(&req, &rem)
	return int64(rem.tv_sec), int64(rem.tv_nsec)
}

//export nanosleep
func nanosleep(req *C.struct_timespec, rem *C.struct_timespec) C.int {
	ensureInit()
	if req == nil {
		return -1
	}
	state := oracle.CurrentSpeedup()
	reqTS := vclock.Timespec{Sec: int64(req.tv_sec), Nsec: int64(req.tv_nsec)}

	remaining := vsleep.Sleep(cNanosleeper{}, state, reqTS)
	if rem != nil {
		rem.tv_sec = C.__time_t(remaining.Sec)
		rem.tv_nsec = C.__syscall_slong_t(remaining.Nsec)
	}
	return 0
}
