//go:build linux

// Package vclock implements the virtualized-clock core of the time shim:
// clock id folding, timespec arithmetic, the double-buffered ClockState
// pair, and the Oracle that intercepted time reads go through.
//
// Overview
//
//   - ClockID: the four base clocks (Wall, Mono, ProcCPU, ThreadCPU) plus
//     FoldClockID, which maps every clock_gettime(2) id this shim recognises
//     onto one of them.
//
//   - Timespec: a (Sec, Nsec) value type with Add/Sub/ScaleBy — the
//     arithmetic the virtual-time formula needs, with conversion to/from
//     golang.org/x/sys/unix.Timespec confined to FromUnix/ToUnix.
//
//   - ClockState / ComposeState: an immutable (speedup, per-clock origin)
//     snapshot and the pure function that derives the next one from the
//     currently published one, preserving the continuity invariant.
//
//   - Pair: the two-slot double buffer. ReadCurrent is wait-free for
//     readers; TryPublish is non-blocking for writers and silently drops a
//     contended attempt rather than waiting.
//
//   - Oracle: ties a Pair, a genuine ClockReader, and an ordered list of
//     SpeedSources together into the four entry points a target calls.
//
// Example: wiring an oracle over the genuine system clock
//
//	reader := realsym.NewSysReader()
//	pair, err := vclock.NewPair(reader)
//	if err != nil {
//	    log.Fatalf("vclock: %v", err)
//	}
//	channel := shimchannel.NewReader("/tmp/time_control" + os.Getenv("TIME_CHANNEL"))
//	override := &vclock.TestOverride{}
//	oracle := vclock.NewOracle(pair, reader, override, channel)
//
//	sec := oracle.WallSeconds()
//	ts, err := oracle.ClockRead(vclock.Mono)
//
// Concurrency
//
// Every exported method on Pair and Oracle is safe to call from any number
// of goroutines (or, via cmd/libtimevirt, any number of OS threads the
// shim's host process happens to be running on) without external
// synchronisation, and none of them block or allocate on a successful or
// contended path — the one allocation in this package, ComposeState, only
// runs inside TryPublish while the writer latch is held, never on a plain
// read.
package vclock
