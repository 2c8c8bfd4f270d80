package panel

// Settler moves blocks down into empty cells after clears. It owns when a
// dropped block lands; the match scanner only reads Chainable.
type Settler interface {
	Settle(g *Grid)
}

// Gravity drops unsupported blocks one row per tick.
//
// A block drops while the cell below it is empty and idle. Dropping blocks
// are in StateFall; a falling block that could not move this tick lands and
// becomes idle again, and is matchable from the next tick on.
type Gravity struct{}

// Settle implements Settler.
func (Gravity) Settle(g *Grid) {
	var moved [Blocks]bool

	// Bottom-up so a whole column above a gap drops together.
	for y := 1; y < Rows; y++ {
		for x := range Cols {
			b := g.Block(Index(x, y))
			if b.IsEmpty() || (b.State != StateIdle && b.State != StateFall) {
				continue
			}

			below := g.Block(Index(x, y-1))
			if !below.IsEmpty() || below.State != StateIdle {
				continue
			}

			below.Kind, below.Chainable = b.Kind, b.Chainable
			ChangeState(below, StateFall)
			b.reset(KindEmpty)
			moved[below.ID] = true
		}
	}

	g.Each(func(b *Block) {
		if b.State == StateFall && !moved[b.ID] {
			ChangeState(b, StateIdle)
		}
	})
}

// markChainable flags the resting stack above a cell that a clear just emptied.
func markChainable(g *Grid, id int) {
	x, y := Coord(id)
	for y++; y < Rows; y++ {
		b := g.Block(Index(x, y))
		if b.IsEmpty() || b.State == StateClear {
			return
		}
		b.Chainable = true
	}
}

// decayChainable drops the flag from idle blocks. Blocks matched this tick
// are already clearing and keep theirs.
func decayChainable(g *Grid) {
	g.Each(func(b *Block) {
		if b.State == StateIdle {
			b.Chainable = false
		}
	})
}
