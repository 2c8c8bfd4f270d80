package panel

// cursorFrames is the length of the cursor animation loop.
const cursorFrames = 7.0

// Cursor marks the left cell of the horizontal pair the player will swap.
// Positions are grid coordinates stored as floats for the renderer.
type Cursor struct {
	X, Y       float64
	AnimOffset float64
}

// NewCursor creates a cursor at (x, y), clamped to its legal range.
func NewCursor(x, y int) Cursor {
	c := Cursor{X: float64(x), Y: float64(y)}
	c.X = min(max(c.X, 0), Cols-2)
	c.Y = min(max(c.Y, 1), Rows-1)
	return c
}

// Cell returns the cursor's left cell.
func (c Cursor) Cell() (x, y int) {
	return int(c.X), int(c.Y)
}

// MoveUp moves the cursor one row up unless it is on the top row.
func (c *Cursor) MoveUp() {
	if c.Y < Rows-1 {
		c.Y++
	}
}

// MoveDown moves the cursor one row down. Row 0 is never selectable.
func (c *Cursor) MoveDown() {
	if c.Y > 1 {
		c.Y--
	}
}

// MoveLeft moves the cursor one column left.
func (c *Cursor) MoveLeft() {
	if c.X > 0 {
		c.X--
	}
}

// MoveRight moves the cursor one column right; the pair must stay on the grid.
func (c *Cursor) MoveRight() {
	if c.X < Cols-2 {
		c.X++
	}
}

// Animate advances the animation a quarter frame, looping back to 0 after the last frame.
func (c *Cursor) Animate() {
	if c.AnimOffset < cursorFrames {
		c.AnimOffset += 1.0 / 4.0
	} else {
		c.AnimOffset = 0
	}
}

// Sprite returns the animation frame to draw.
func (c Cursor) Sprite() int {
	return int(c.AnimOffset)
}
