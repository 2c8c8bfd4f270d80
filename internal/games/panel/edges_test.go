package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

func TestHoldRepeatPattern(t *testing.T) {
	d := NewEdgeDetector(DefaultRepeatDelay)
	in := held(core.ActionLeft)

	for tick := 1; tick <= 40; tick++ {
		got := d.Hold(in, core.ActionLeft)
		want := tick == 1 || tick >= 18
		assert.Equal(t, want, got, "tick %d", tick)
	}
}

func TestHoldReleaseRestartsPattern(t *testing.T) {
	d := NewEdgeDetector(DefaultRepeatDelay)
	in := held(core.ActionUp)

	for range 25 {
		d.Hold(in, core.ActionUp)
	}
	assert.False(t, d.Hold(core.NewInputFrame(), core.ActionUp))
	assert.Equal(t, 0, d.Count(core.ActionUp))

	assert.True(t, d.Hold(in, core.ActionUp), "first tick after release")
	assert.False(t, d.Hold(in, core.ActionUp), "second tick after release")
}

func TestHoldCustomRepeatDelay(t *testing.T) {
	d := NewEdgeDetector(2)
	in := held(core.ActionRight)

	var got []bool
	for range 5 {
		got = append(got, d.Hold(in, core.ActionRight))
	}
	assert.Equal(t, []bool{true, false, false, true, true}, got)
}

func TestPressFiresOncePerHold(t *testing.T) {
	d := NewEdgeDetector(DefaultRepeatDelay)
	in := held(core.ActionSwap)

	fired := 0
	for range 100 {
		if d.Press(in, core.ActionSwap) {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.Equal(t, 1, d.Count(core.ActionSwap), "press does not keep counting")

	assert.False(t, d.Press(core.NewInputFrame(), core.ActionSwap))
	assert.True(t, d.Press(in, core.ActionSwap), "re-arms after release")
}

func TestActionsAreIndependent(t *testing.T) {
	d := NewEdgeDetector(DefaultRepeatDelay)
	in := held(core.ActionUp, core.ActionLeft)

	assert.True(t, d.Hold(in, core.ActionUp))
	assert.True(t, d.Hold(in, core.ActionLeft))
	assert.False(t, d.Hold(in, core.ActionDown))
	assert.Equal(t, 0, d.Count(core.ActionDown))
}

func TestUntrackedActionPanics(t *testing.T) {
	d := NewEdgeDetector(DefaultRepeatDelay)
	require.Panics(t, func() {
		d.Hold(core.NewInputFrame(), core.ActionPause)
	})
	require.Panics(t, func() {
		d.Press(core.NewInputFrame(), core.Action(42))
	})
}
