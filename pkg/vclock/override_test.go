//go:build linux

package vclock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestOverride_SetThenConsume(t *testing.T) {
	var o TestOverride
	_, changed := o.Consume()
	assert.False(t, changed, "no pending override initially")

	o.Set(2.5)
	speed, changed := o.Consume()
	assert.True(t, changed)
	assert.Equal(t, float32(2.5), speed)

	_, changed = o.Consume()
	assert.False(t, changed, "override is cleared after one Consume")
}

func TestTestOverride_ImplementsSpeedSource(t *testing.T) {
	var o TestOverride
	var _ SpeedSource = &o
}
