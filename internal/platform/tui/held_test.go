package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(60)
	assert.Equal(t, uint64(15), h.FirstWindow())
	assert.Equal(t, uint64(7), h.RepeatWindow())

	h.Press(core.ActionSwap)
	for i := range h.FirstWindow() {
		assert.True(t, h.Frame().Has(core.ActionSwap), "tick %d", i)
	}
	assert.False(t, h.Frame().Has(core.ActionSwap))
}

func TestHeldKeysBridgesFirstRepeat(t *testing.T) {
	h := NewHeldKeys(60)

	// First event, then the terminal's repeat delay, then fast repeats
	h.Press(core.ActionSwap)
	for i := range 14 {
		assert.True(t, h.Frame().Has(core.ActionSwap), "tick %d", i)
	}
	h.Press(core.ActionSwap)

	// Once repeating, the short window applies
	for i := range h.RepeatWindow() {
		assert.True(t, h.Frame().Has(core.ActionSwap), "repeat tick %d", i)
	}
	assert.False(t, h.Frame().Has(core.ActionSwap))
}

func TestHeldKeysTapStaysBelowRepeatDelay(t *testing.T) {
	h := NewHeldKeys(60)
	h.Press(core.ActionUp)

	held := 0
	for range 60 {
		if h.Frame().Has(core.ActionUp) {
			held++
		}
	}
	assert.Less(t, held, 16)
}

func TestHeldKeysRepeatsExtendHold(t *testing.T) {
	h := NewHeldKeys(60)

	// Auto-repeat every other tick keeps the key down for the whole run
	for i := range 40 {
		if i%2 == 0 {
			h.Press(core.ActionUp)
		}
		assert.True(t, h.Frame().Has(core.ActionUp), "tick %d", i)
	}
}

func TestHeldKeysReleaseAndReset(t *testing.T) {
	h := NewHeldKeys(60)

	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)
	h.Release(core.ActionLeft)

	frame := h.Frame()
	assert.False(t, frame.Has(core.ActionLeft))
	assert.True(t, frame.Has(core.ActionRight))

	h.Reset()
	assert.False(t, h.Frame().Has(core.ActionRight))
}

func TestHeldKeysIgnoresInvalidActions(t *testing.T) {
	h := NewHeldKeys(60)
	h.Press(core.ActionNone)
	h.Press(core.Action(99))

	frame := h.Frame()
	for _, a := range heldActions {
		assert.False(t, frame.Has(a))
	}
}

func TestHeldKeysSlowTickRate(t *testing.T) {
	// At 5 ticks per second the window still covers one tick
	h := NewHeldKeys(5)
	assert.Equal(t, uint64(1), h.FirstWindow())
	assert.Equal(t, uint64(1), h.RepeatWindow())

	h.Press(core.ActionSwap)
	assert.True(t, h.Frame().Has(core.ActionSwap))
	assert.False(t, h.Frame().Has(core.ActionSwap))
}
