//go:build linux

package vclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a SpeedSource test double that reports a change exactly once.
type fakeSource struct {
	speed   float32
	fired   bool
	polled  int
	pending bool
}

func (s *fakeSource) Poll() (float32, bool) {
	s.polled++
	if !s.pending {
		return 0, false
	}
	s.pending = false
	s.fired = true
	return s.speed, true
}

func TestOracle_ClockRead_UnsupportedClock(t *testing.T) {
	reader := newFakeReader(0)
	pair, err := NewPair(reader)
	require.NoError(t, err)

	o := NewOracle(pair, reader)
	_, err = o.ClockRead(Invalid)
	assert.ErrorIs(t, err, ErrUnsupportedClock)
}

func TestOracle_ClockReadRaw_UnrecognisedID(t *testing.T) {
	reader := newFakeReader(0)
	pair, err := NewPair(reader)
	require.NoError(t, err)

	o := NewOracle(pair, reader)
	_, err = o.ClockReadRaw(424242)
	assert.ErrorIs(t, err, ErrUnsupportedClock)
}

// TestOracle_SlopeAfterSpeedupChange exercises property 3 from the base
// spec: after a speedup change, successive fake-time reads advance at the
// new rate relative to real time, not the old one.
func TestOracle_SlopeAfterSpeedupChange(t *testing.T) {
	reader := newFakeReader(0)
	pair, err := NewPair(reader)
	require.NoError(t, err)

	src := &fakeSource{speed: 4.0, pending: true}
	o := NewOracle(pair, reader, src)

	first, err := o.ClockRead(Mono)
	require.NoError(t, err)
	assert.True(t, src.fired, "first call should have applied the pending speedup")

	reader.advance(billion) // one real second elapses
	second, err := o.ClockRead(Mono)
	require.NoError(t, err)

	delta := second.Sub(first)
	assert.Equal(t, int64(4), delta.Sec, "one real second at 4x should read as four fake seconds")
}

func TestOracle_TryUpdate_FirstChangedSourceWins(t *testing.T) {
	reader := newFakeReader(0)
	pair, err := NewPair(reader)
	require.NoError(t, err)

	first := &fakeSource{speed: 2.0, pending: true}
	second := &fakeSource{speed: 8.0, pending: true}
	o := NewOracle(pair, reader, first, second)

	o.tryUpdate()

	assert.True(t, first.fired)
	assert.False(t, second.fired, "second source must not be polled once an earlier source reports a change")
	assert.Equal(t, 2.0, o.CurrentSpeedup())
}

func TestOracle_WallTimevalAndProcessCPUTicks(t *testing.T) {
	reader := newFakeReader(0)
	pair, err := NewPair(reader)
	require.NoError(t, err)

	o := NewOracle(pair, reader)
	reader.advance(2*billion + 500_000_000)

	sec, usec := o.WallTimeval()
	assert.Equal(t, int64(2), sec)
	assert.Equal(t, int64(500_000), usec)

	ticks := o.ProcessCPUTicks(100)
	assert.Equal(t, int64(250), ticks)
}
