package panel

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/panel-arcade/internal/config"
)

// ClearState tracks match and chain bookkeeping for one field.
type ClearState struct {
	queue  []int                     // Block ids matched this tick, in scan order
	queued *intmap.Map[int, struct{}] // Membership index for queue

	ComboCounter  int // Position within the current clear batch
	Chain         int // Current chain depth
	LastChain     int // Deepest chain reached this round
	BlocksCleared int // Total blocks cleared this round
}

// NewClearState returns bookkeeping in its round-start state.
func NewClearState() ClearState {
	return ClearState{
		queued:    intmap.New[int, struct{}](Blocks),
		Chain:     1,
		LastChain: 1,
	}
}

// Reset restores round-start defaults.
func (c *ClearState) Reset() {
	c.queue = c.queue[:0]
	c.queued.Clear()
	c.ComboCounter = 0
	c.Chain = 1
	c.LastChain = 1
	c.BlocksCleared = 0
}

// Queue returns the pending ids.
func (c *ClearState) Queue() []int {
	return c.queue
}

// enqueue adds id unless it is already pending.
func (c *ClearState) enqueue(id int) {
	if _, ok := c.queued.Get(id); ok {
		return
	}
	c.queued.Put(id, struct{}{})
	c.queue = append(c.queue, id)
}

func (c *ClearState) drain() {
	c.queue = c.queue[:0]
	c.queued.Clear()
}

// ClearEvent describes one batch of blocks that started clearing together.
type ClearEvent struct {
	Chain         int
	Combo         int
	BlocksCleared int
	IDs           []int
}

// Chained reports whether the batch extended a chain.
func (e ClearEvent) Chained() bool {
	return e.Chain > 1
}

// ScanMatches finds every run of three comboable blocks, horizontally to the
// right and vertically upward from each cell, and queues their ids.
// It only reads the grid.
func ScanMatches(g *Grid, c *ClearState) {
	for y := range Rows {
		for x := range Cols {
			for _, dir := range [2][2]int{{1, 0}, {0, 1}} {
				if ids, ok := matchFrom(g, x, y, dir[0], dir[1]); ok {
					for _, id := range ids {
						c.enqueue(id)
					}
				}
			}
		}
	}
}

// matchFrom checks the block at (x, y) and the next two in direction (dx, dy).
func matchFrom(g *Grid, x, y, dx, dy int) ([3]int, bool) {
	origin, _ := g.At(x, y)
	if !origin.IsComboable() {
		return [3]int{}, false
	}

	second, ok := g.At(x+dx, y+dy)
	if !ok || !second.IsComboableWith(origin.Kind) {
		return [3]int{}, false
	}
	third, ok := g.At(x+2*dx, y+2*dy)
	if !ok || !third.IsComboableWith(origin.Kind) {
		return [3]int{}, false
	}

	return [3]int{origin.ID, second.ID, third.ID}, true
}

// ApplyClears moves every queued block into CLEAR with staggered pop times and
// updates chain counters. It returns false when nothing was queued.
func ApplyClears(g *Grid, c *ClearState, timing config.TimingConfig) (ClearEvent, bool) {
	size := len(c.queue)
	if size == 0 {
		return ClearEvent{}, false
	}

	c.ComboCounter = 0
	total := timing.Flash + timing.Face + timing.Pop*size

	if anyChainable(g, c.queue) {
		c.Chain++
		c.LastChain = max(c.Chain, c.LastChain)
	} else {
		c.Chain = 1
	}

	ids := make([]int, size)
	copy(ids, c.queue)

	for _, id := range ids {
		b := g.Block(id)
		b.ClearTime = timing.Flash + timing.Face + timing.Pop*c.ComboCounter
		c.ComboCounter++

		b.Counter = total
		b.ClearStartCounter = total
		ChangeState(b, StateClear)
	}

	c.BlocksCleared += c.ComboCounter
	c.drain()

	return ClearEvent{
		Chain:         c.Chain,
		Combo:         c.ComboCounter,
		BlocksCleared: c.BlocksCleared,
		IDs:           ids,
	}, true
}

func anyChainable(g *Grid, ids []int) bool {
	for _, id := range ids {
		if g.Block(id).Chainable {
			return true
		}
	}
	return false
}
