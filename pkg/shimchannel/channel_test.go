//go:build linux

package shimchannel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Poll_RetriesUntilFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel")
	r := NewReader(path)

	_, changed := r.Poll()
	assert.False(t, changed, "open should fail gracefully before the file exists")
	assert.ErrorIs(t, r.Status(), ErrChannelUnavailable)

	require.NoError(t, WriteSpeedup(path, 3.0))

	speed, changed := r.Poll()
	assert.True(t, changed)
	assert.Equal(t, float32(3.0), speed)
	assert.NoError(t, r.Status())
}

func TestReader_Poll_ReadsLatestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel")
	require.NoError(t, WriteSpeedup(path, 1.0))

	r := NewReader(path)
	speed, changed := r.Poll()
	require.True(t, changed)
	assert.Equal(t, float32(1.0), speed)

	require.NoError(t, WriteSpeedup(path, 9.5))
	speed, changed = r.Poll()
	require.True(t, changed)
	assert.Equal(t, float32(9.5), speed)

	require.NoError(t, r.Close())
}

func TestReader_Poll_TrailingBytesOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "channel")
	require.NoError(t, WriteSpeedup(path, 0.25))

	r := NewReader(path)
	speed, changed := r.Poll()
	require.True(t, changed)
	assert.Equal(t, float32(0.25), speed)
}

func TestReader_Status_BeforeOpen(t *testing.T) {
	r := NewReader(filepath.Join(t.TempDir(), "never-created"))
	assert.ErrorIs(t, r.Status(), ErrChannelUnavailable)
	assert.NoError(t, r.Close(), "closing a never-opened reader is a no-op")
}
