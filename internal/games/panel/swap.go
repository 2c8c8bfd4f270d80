package panel

// AttemptSwap swaps the blocks at (x, y) and (x+1, y).
// It returns false without touching the grid when both cells are empty or
// either side fails its swappability check.
func AttemptSwap(g *Grid, x, y, swapTime int) bool {
	i := Index(x, y)
	left := g.Block(i)
	right := g.Block(Index(x+1, y))

	if left.IsEmpty() && right.IsEmpty() {
		return false
	}

	aboveLeft, _ := g.Above(i)
	aboveRight, _ := g.Above(i + 1)

	if !left.IsSwappable(right, aboveLeft) || !right.IsSwappable(left, aboveRight) {
		return false
	}

	startSwap(left, 1, swapTime)
	startSwap(right, -1, swapTime)

	// Kinds cross over while offsets stay with the side, so each kind is
	// drawn starting from the cell it left.
	left.SwapContent(right)
	return true
}

func startSwap(b *Block, dir, swapTime int) {
	ChangeState(b, StateSwap)
	b.MoveDir = dir
	b.Offset = Vec2{X: SwapDistance * float64(dir)}
	b.Counter = swapTime
}
