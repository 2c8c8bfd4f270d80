package panel

import (
	"fmt"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

// DefaultRepeatDelay is the number of held ticks before Hold starts repeating.
const DefaultRepeatDelay = 16

// edgeActions are the actions the detector tracks, in counter-slot order.
var edgeActions = [...]core.Action{
	core.ActionUp,
	core.ActionDown,
	core.ActionLeft,
	core.ActionRight,
	core.ActionSwap,
	core.ActionSpace,
}

// EdgeDetector turns "is held" samples into hold-with-repeat and one-shot
// press events. It keeps one counter per tracked action.
type EdgeDetector struct {
	counters    [len(edgeActions)]int
	repeatDelay int
}

// NewEdgeDetector creates a detector that auto-repeats after repeatDelay ticks.
func NewEdgeDetector(repeatDelay int) *EdgeDetector {
	if repeatDelay < 1 {
		repeatDelay = DefaultRepeatDelay
	}
	return &EdgeDetector{repeatDelay: repeatDelay}
}

// slot returns the counter index for a. Untracked actions are a programming error.
func slot(a core.Action) int {
	for i, tracked := range edgeActions {
		if tracked == a {
			return i
		}
	}
	panic(fmt.Sprintf("panel: action %s is not edge-tracked", a))
}

// Hold reports true on the first tick a is held and on every tick once it has
// been held for longer than the repeat delay. Releasing resets the counter.
func (d *EdgeDetector) Hold(src core.HeldSource, a core.Action) bool {
	i := slot(a)
	if !src.Held(a) {
		d.counters[i] = 0
		return false
	}

	count := d.counters[i]
	d.counters[i]++
	return count == 0 || count > d.repeatDelay
}

// Press reports true only on the first tick of each contiguous hold of a.
func (d *EdgeDetector) Press(src core.HeldSource, a core.Action) bool {
	i := slot(a)
	if !src.Held(a) {
		d.counters[i] = 0
		return false
	}

	if d.counters[i] == 0 {
		d.counters[i] = 1
		return true
	}
	return false
}

// Count returns the current counter for a.
func (d *EdgeDetector) Count(a core.Action) int {
	return d.counters[slot(a)]
}

// Reset zeroes all counters.
func (d *EdgeDetector) Reset() {
	d.counters = [len(edgeActions)]int{}
}
