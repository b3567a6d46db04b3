//go:build linux

package vclock

import "golang.org/x/sys/unix"

const billion = 1_000_000_000

// Timespec is a (seconds, nanoseconds) pair in canonical form: 0 <= Nsec <
// 1e9. It is the value type the rest of this package does clock arithmetic
// on; conversion to and from the platform's unix.Timespec happens only at
// the package boundary (FromUnix / ToUnix), never inline in the formulas.
type Timespec struct {
	Sec  int64
	Nsec int64
}

// FromUnix converts a platform timespec into canonical form.
func FromUnix(t unix.Timespec) Timespec {
	return normalize(Timespec{Sec: int64(t.Sec), Nsec: int64(t.Nsec)})
}

// ToUnix converts back to the platform's timespec representation.
func (t Timespec) ToUnix() unix.Timespec {
	return unix.Timespec{Sec: t.Sec, Nsec: t.Nsec}
}

// normalize restores 0 <= Nsec < 1e9 by borrowing/carrying between the two
// fields.
func normalize(t Timespec) Timespec {
	for t.Nsec >= billion {
		t.Nsec -= billion
		t.Sec++
	}
	for t.Nsec < 0 {
		t.Nsec += billion
		t.Sec--
	}
	return t
}

// Sub returns t - o, borrowing a second into nanoseconds when o's
// nanoseconds exceed t's.
func (t Timespec) Sub(o Timespec) Timespec {
	return normalize(Timespec{Sec: t.Sec - o.Sec, Nsec: t.Nsec - o.Nsec})
}

// Add returns t + o, defined in terms of Sub and negation so there is only
// one normalisation path to reason about.
func (t Timespec) Add(o Timespec) Timespec {
	return t.Sub(o.negate())
}

func (t Timespec) negate() Timespec {
	return Timespec{Sec: -t.Sec, Nsec: -t.Nsec}
}

// ScaleBy multiplies t by a finite, non-negative real scalar, treating Sec
// and Nsec as real-valued seconds/nanoseconds, folding the fractional part
// of the scaled seconds into nanoseconds, and re-normalising with
// floored-modulo arithmetic so the result stays in canonical form.
func (t Timespec) ScaleBy(s float64) Timespec {
	sSec := float64(t.Sec) * s
	sNsec := float64(t.Nsec) * s

	sSecInt := int64(sSec)
	sSecFrac := sSec - float64(sSecInt)

	nsecInt := sNsec + billion*sSecFrac
	mod := flooredMod(nsecInt, billion)
	sSecInt += int64((nsecInt - mod) / billion)

	return Timespec{Sec: sSecInt, Nsec: int64(mod)}
}

// flooredMod is the floored-modulo operation: the result always has the
// same sign as the divisor (here always positive), unlike Go's native %.
func flooredMod(x, m float64) float64 {
	r := mathMod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

func mathMod(x, m float64) float64 {
	q := float64(int64(x / m))
	return x - q*m
}
