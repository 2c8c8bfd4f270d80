// Package panel implements the simulation core of a panel-swap puzzle:
// a fixed grid of blocks, a cursor that swaps horizontal pairs, and a
// match scanner that turns runs of three or more into timed clears with
// chain and combo counters.
package panel

import "fmt"

// Field dimensions. Row 0 is the bottom of the stack.
const (
	Cols   = 6
	Rows   = 12
	Blocks = Cols * Rows
)

// Grid maps cell coordinates to blocks. Slot i always holds the block with ID i;
// only block contents change during a round.
type Grid struct {
	blocks [Blocks]Block
}

// NewGrid creates a grid of empty idle blocks.
func NewGrid() *Grid {
	g := &Grid{}
	for i := range g.blocks {
		g.blocks[i] = Block{ID: i, Kind: KindEmpty}
	}
	return g
}

// Index converts a coordinate to a linear index.
// Panics when the coordinate is outside the grid.
func Index(x, y int) int {
	if !InBounds(x, y) {
		panic(fmt.Sprintf("panel: cell (%d, %d) out of bounds", x, y))
	}
	return y*Cols + x
}

// InBounds returns true if the coordinate is within the grid boundaries.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Coord converts a linear index back to (x, y).
func Coord(i int) (x, y int) {
	return i % Cols, i / Cols
}

// Block returns the block with the given id.
// Panics on an id outside [0, Blocks).
func (g *Grid) Block(id int) *Block {
	if id < 0 || id >= Blocks {
		panic(fmt.Sprintf("panel: block id %d out of range", id))
	}
	return &g.blocks[id]
}

// At returns the block at (x, y), or false when the cell is off the grid.
func (g *Grid) At(x, y int) (*Block, bool) {
	if !InBounds(x, y) {
		return nil, false
	}
	return &g.blocks[y*Cols+x], true
}

// Above returns the block directly above slot i, or false on the top row.
func (g *Grid) Above(i int) (*Block, bool) {
	if i >= Blocks-Cols {
		return nil, false
	}
	return g.Block(i + Cols), true
}

// Each calls fn for every block in row-major order.
func (g *Grid) Each(fn func(b *Block)) {
	for i := range g.blocks {
		fn(&g.blocks[i])
	}
}

// Kinds returns the kind of every slot in index order.
func (g *Grid) Kinds() [Blocks]Kind {
	var kinds [Blocks]Kind
	for i := range g.blocks {
		kinds[i] = g.blocks[i].Kind
	}
	return kinds
}
