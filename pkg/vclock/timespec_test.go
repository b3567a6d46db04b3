//go:build linux

package vclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimespecSub_NoBorrow(t *testing.T) {
	a := Timespec{Sec: 10, Nsec: 500}
	b := Timespec{Sec: 3, Nsec: 100}
	got := a.Sub(b)
	require.Equal(t, Timespec{Sec: 7, Nsec: 400}, got)
}

func TestTimespecSub_Borrows(t *testing.T) {
	a := Timespec{Sec: 10, Nsec: 100}
	b := Timespec{Sec: 3, Nsec: 500}
	got := a.Sub(b)
	require.Equal(t, Timespec{Sec: 6, Nsec: billion - 400}, got)
}

func TestTimespecAdd(t *testing.T) {
	a := Timespec{Sec: 1, Nsec: billion - 1}
	b := Timespec{Sec: 0, Nsec: 2}
	got := a.Add(b)
	require.Equal(t, Timespec{Sec: 2, Nsec: 1}, got)
}

func TestTimespecScaleBy_Identity(t *testing.T) {
	a := Timespec{Sec: 42, Nsec: 123456789}
	got := a.ScaleBy(1.0)
	assert.Equal(t, a, got)
}

func TestTimespecScaleBy_Double(t *testing.T) {
	a := Timespec{Sec: 1, Nsec: 600000000}
	got := a.ScaleBy(2.0)
	require.Equal(t, Timespec{Sec: 3, Nsec: 200000000}, got)
}

func TestTimespecScaleBy_Half(t *testing.T) {
	a := Timespec{Sec: 3, Nsec: 0}
	got := a.ScaleBy(0.5)
	require.Equal(t, Timespec{Sec: 1, Nsec: 500000000}, got)
}

func TestTimespecScaleBy_StaysCanonical(t *testing.T) {
	a := Timespec{Sec: 100, Nsec: 999999999}
	got := a.ScaleBy(3.3)
	assert.GreaterOrEqual(t, got.Nsec, int64(0))
	assert.Less(t, got.Nsec, int64(billion))
}

func TestUnixRoundTrip(t *testing.T) {
	a := Timespec{Sec: 17, Nsec: 42}
	got := FromUnix(a.ToUnix())
	require.Equal(t, a, got)
}
