//go:build linux

package vclock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeState_InitIsIdentity(t *testing.T) {
	reader := newFakeReader(5 * billion)
	state, err := ComposeState(reader, nil, 1.0)
	require.NoError(t, err)

	for idx := 0; idx < NumBaseClocks; idx++ {
		require.Equal(t, state.Origins[idx].Real, state.Origins[idx].Fake)
	}
	require.Equal(t, 1.0, state.Speedup)
}

func TestComposeState_ContinuityAcrossSpeedupChange(t *testing.T) {
	reader := newFakeReader(0)
	initial, err := ComposeState(reader, nil, 1.0)
	require.NoError(t, err)

	// Advance real time, then compute fake time under the old state right
	// before switching speedups.
	reader.advance(3 * billion)
	preSwitch := initial.fake(Wall, Timespec{Sec: 3, Nsec: 0})

	next, err := ComposeState(reader, &initial, 10.0)
	require.NoError(t, err)

	// The continuity invariant: fake time computed under the new state at
	// the instant of the switch must equal what the old state would have
	// reported at that same instant.
	postSwitch := next.fake(Wall, Timespec{Sec: 3, Nsec: 0})
	require.Equal(t, preSwitch, postSwitch)
}
