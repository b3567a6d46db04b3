//go:build linux

// Command libtimevirt is the actual time shim: built with
// `go build -buildmode=c-shared -o libtimevirt.so ./cmd/libtimevirt`, then
// loaded ahead of libc with:
//
//	LD_PRELOAD=./libtimevirt.so TIME_CHANNEL=n my_process
//
// This package is the only one in the repository that imports "C" — every
// other package is plain, cgo-free Go, importable and testable on its own.
// Here, cgo exists purely to do the one thing pure Go cannot: export C-ABI
// symbols into the dynamic linker's namespace and resolve RTLD_NEXT.
package main

/*
#include <time.h>
#include <sys/time.h>
*/
import "C"

import (
	"log/slog"
	"os"
	"sync"

	"github.com/riftlab/timevirt/pkg/shimchannel"
	"github.com/riftlab/timevirt/pkg/vclock"
)

const channelVar = "TIME_CHANNEL"

var (
	oracle   *vclock.Oracle
	override vclock.TestOverride

	initOnce sync.Once
)

// initShim resolves the genuine-clock symbols, builds the initial
// ClockStatePair, and wires the oracle. It runs exactly once, before any
// exported symbol below services a call, triggered lazily from the first
// one entered. A resolution failure here is fatal: the shim cannot
// function without genuine time to project from.
func initShim() {
	reader, err := newCGOClockReader()
	if err != nil {
		slog.Error("libtimevirt: failed to resolve genuine clock_gettime", "error", err)
		os.Exit(1)
	}

	pair, err := vclock.NewPair(reader)
	if err != nil {
		slog.Error("libtimevirt: failed to initialise clock state", "error", err)
		os.Exit(1)
	}

	channel := shimchannel.NewReader(shimchannel.DefaultPrefix + os.Getenv(channelVar))
	oracle = vclock.NewOracle(pair, reader, &override, channel)
}

func ensureInit() {
	initOnce.Do(initShim)
}

func main() {
	// Required by cgo for a c-shared build target; the shim has no
	// standalone entry point of its own.
}
