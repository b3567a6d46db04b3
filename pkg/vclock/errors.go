//go:build linux

package vclock

import "errors"

var (
	// ErrUnsupportedClock is returned by Oracle.ClockRead when the caller's
	// clock id does not fold onto any base clock. Apart from a failed
	// genuine read, which ClockRead passes through unchanged, it is the only
	// error this package surfaces to a caller of the oracle's per-call entry
	// points; a failed or contended speedup update is swallowed and retried.
	ErrUnsupportedClock = errors.New("vclock: unsupported clock id")

	// ErrSymbolMissing is returned by the constructor of a ClockReader that
	// could not resolve the genuine time function it needs
	// (cmd/libtimevirt's newCGOClockReader). It is reported at startup,
	// before NewPair runs, where it is fatal.
	ErrSymbolMissing = errors.New("vclock: genuine clock symbol unavailable")
)
