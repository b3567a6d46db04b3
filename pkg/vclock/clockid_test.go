//go:build linux

package vclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestFoldClockID_Bases(t *testing.T) {
	assert.Equal(t, Wall, FoldClockID(unix.CLOCK_REALTIME))
	assert.Equal(t, Mono, FoldClockID(unix.CLOCK_MONOTONIC))
	assert.Equal(t, ProcCPU, FoldClockID(unix.CLOCK_PROCESS_CPUTIME_ID))
	assert.Equal(t, ThreadCPU, FoldClockID(unix.CLOCK_THREAD_CPUTIME_ID))
}

func TestFoldClockID_Aliases(t *testing.T) {
	assert.Equal(t, Mono, FoldClockID(unix.CLOCK_MONOTONIC_RAW))
	assert.Equal(t, Mono, FoldClockID(unix.CLOCK_MONOTONIC_COARSE))
	assert.Equal(t, Mono, FoldClockID(unix.CLOCK_BOOTTIME))
	assert.Equal(t, Mono, FoldClockID(unix.CLOCK_BOOTTIME_ALARM))
	assert.Equal(t, Wall, FoldClockID(unix.CLOCK_REALTIME_COARSE))
	assert.Equal(t, Wall, FoldClockID(unix.CLOCK_REALTIME_ALARM))
}

func TestFoldClockID_Unrecognised(t *testing.T) {
	assert.Equal(t, Invalid, FoldClockID(9999))
}

func TestClockIDString(t *testing.T) {
	assert.Equal(t, "WALL", Wall.String())
	assert.Equal(t, "INVALID", Invalid.String())
}
