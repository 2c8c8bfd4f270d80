package tui

import (
	"time"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

// Terminals report presses and auto-repeats but never releases, so a key
// counts as held while its events keep arriving inside a window.
//
// firstWindow bridges the gap between a key's first event and the terminal's
// first auto-repeat. It stays below the field's default repeat delay (16
// ticks at 60 fps) so a single tap never auto-repeats. Terminals whose repeat
// delay is longer than firstWindow still show a held key as a release and a
// second press. repeatWindow covers the much shorter gap between repeats.
const (
	firstWindow  = 250 * time.Millisecond
	repeatWindow = 120 * time.Millisecond
)

// heldActions lists the actions HeldKeys turns into frames.
var heldActions = []core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionSwap,
	core.ActionSpace,
	core.ActionRaise,
	core.ActionPause,
}

// HeldKeys emulates key-up events from the stream of key presses.
type HeldKeys struct {
	deadline *intmap.Map[core.Action, uint64] // First tick an action is no longer held
	first    uint64                           // Ticks a fresh key stays held
	repeat   uint64                           // Ticks a repeating key stays held
	tick     uint64
}

// NewHeldKeys creates a tracker for the given tick rate.
func NewHeldKeys(tickRate int) *HeldKeys {
	interval := tickInterval(tickRate)
	return &HeldKeys{
		deadline: intmap.New[core.Action, uint64](len(heldActions)),
		first:    max(uint64(firstWindow/interval), 1),
		repeat:   max(uint64(repeatWindow/interval), 1),
	}
}

// Press records a key event for the action on the current tick. An event
// for an action that is still held is a repeat and gets the short window.
func (h *HeldKeys) Press(a core.Action) {
	if !a.Valid() {
		return
	}
	window := h.first
	if until, ok := h.deadline.Get(a); ok && h.tick < until {
		window = h.repeat
	}
	h.deadline.Put(a, h.tick+window)
}

// Release forgets the action immediately.
func (h *HeldKeys) Release(a core.Action) {
	h.deadline.Del(a)
}

// Frame returns the actions held on the current tick and advances to the
// next one. Actions whose window ran out are dropped.
func (h *HeldKeys) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range heldActions {
		until, ok := h.deadline.Get(a)
		if !ok {
			continue
		}
		if h.tick >= until {
			h.deadline.Del(a)
			continue
		}
		frame.Set(a)
	}
	h.tick++
	return frame
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	h.deadline.Clear()
}

// FirstWindow returns how many ticks a key stays held after its first event.
func (h *HeldKeys) FirstWindow() uint64 {
	return h.first
}

// RepeatWindow returns how many ticks a key stays held after a repeat.
func (h *HeldKeys) RepeatWindow() uint64 {
	return h.repeat
}
