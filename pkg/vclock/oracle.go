//go:build linux

package vclock

// SpeedSource is the write-side input an Oracle consults on every call.
// Which source is tried first is entirely the caller's choice of which
// sources to pass, and in what order — Oracle itself just asks each source
// in turn and takes the first change it finds. shimchannel.Reader and
// *TestOverride both implement it.
type SpeedSource interface {
	// Poll returns a newly observed speedup and true, or false if there is
	// nothing new. Must never block and must not allocate.
	Poll() (float32, bool)
}

// Oracle is the virtual-time entry point invoked, directly or through the
// cgo boundary in cmd/libtimevirt, by every intercepted time read. It owns
// nothing but references: a Pair to read/publish, a genuine ClockReader to
// feed composition, and an ordered list of SpeedSources to poll for a
// pending change.
type Oracle struct {
	pair    *Pair
	reader  ClockReader
	sources []SpeedSource
}

// NewOracle builds an Oracle over an already-initialised Pair. sources are
// polled in the given order on every call; the first one reporting a change
// wins for that call.
func NewOracle(pair *Pair, reader ClockReader, sources ...SpeedSource) *Oracle {
	return &Oracle{pair: pair, reader: reader, sources: sources}
}

// tryUpdate attempts exactly one non-blocking write-side update per call,
// per the base spec's per-call procedure: try the writer latch, and only if
// acquired, poll sources and possibly publish. A contended latch or a
// source with nothing new both silently fall through to reading whatever
// is currently published — never an error, never a retry loop.
func (o *Oracle) tryUpdate() {
	for _, src := range o.sources {
		if speed, changed := src.Poll(); changed {
			// TryPublish itself re-attempts the latch; if another writer
			// already holds it, the update is simply dropped this call,
			// per base spec §4.D failure semantics.
			_, _, _ = o.pair.TryPublish(o.reader, float64(speed))
			return
		}
	}
}

// ClockRead implements the parameterised clock_gettime(2) entry point for an
// already-folded id: if it names a base clock, return the current fake time
// for it. Invalid returns ErrUnsupportedClock and no other entry point is
// affected. ClockReadRaw does the folding of raw platform ids.
func (o *Oracle) ClockRead(id ClockID) (Timespec, error) {
	o.tryUpdate()

	base := id
	if base.index() < 0 {
		return Timespec{}, ErrUnsupportedClock
	}

	realNow, err := o.reader.Read(base)
	if err != nil {
		return Timespec{}, err
	}

	state := o.pair.ReadCurrent()
	return state.fake(base, realNow), nil
}

// CurrentSpeedup returns the speedup multiplier of the currently published
// ClockState, without attempting a write-side update first. Used by the
// opt-in sleep-virtualization build (internal/vsleep) to scale a requested
// sleep duration; ordinary clock reads never need this directly since the
// formula folds speedup in automatically.
func (o *Oracle) CurrentSpeedup() float64 {
	return o.pair.ReadCurrent().Speedup
}

// ClockReadRaw folds a raw clock_gettime(2) clock id before delegating to
// ClockRead. This is what the cgo boundary calls, since the target passes
// raw platform clock ids, not already-folded ClockIDs.
func (o *Oracle) ClockReadRaw(raw int32) (Timespec, error) {
	return o.ClockRead(FoldClockID(raw))
}

// WallSeconds implements the time(2) entry point.
func (o *Oracle) WallSeconds() int64 {
	ts, err := o.ClockRead(Wall)
	if err != nil {
		return 0
	}
	return ts.Sec
}

// WallTimeval implements the gettimeofday(2) entry point: seconds and
// microseconds (nanoseconds / 1000), time zone ignored as the base spec
// requires.
func (o *Oracle) WallTimeval() (sec int64, usec int64) {
	ts, err := o.ClockRead(Wall)
	if err != nil {
		return 0, 0
	}
	return ts.Sec, ts.Nsec / 1000
}

// ProcessCPUTicks implements the clock(3) entry point: fake process-CPU
// time converted to clock ticks.
func (o *Oracle) ProcessCPUTicks(ticksPerSec int64) int64 {
	ts, err := o.ClockRead(ProcCPU)
	if err != nil {
		return 0
	}
	return ts.Sec*ticksPerSec + ts.Nsec*ticksPerSec/billion
}
