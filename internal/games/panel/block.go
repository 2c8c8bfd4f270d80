package panel

// Kind identifies a block's color category.
type Kind int

// KindEmpty marks a slot with no block in it.
const KindEmpty Kind = -1

// State is a block's position in its lifecycle.
type State int

const (
	StateIdle  State = iota // At rest, can be swapped or matched
	StateSwap               // Sliding to its new cell
	StateClear              // Flashing and popping after a match
	StateFall               // Dropping into an empty cell below
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateSwap:
		return "SWAP"
	case StateClear:
		return "CLEAR"
	case StateFall:
		return "FALL"
	default:
		return "UNKNOWN"
	}
}

// SwapDistance is how far a swapping block is displaced when the swap starts,
// measured in sub-cell units (one full cell).
const SwapDistance = 16.0

// Vec2 is a sub-cell animation displacement.
type Vec2 struct {
	X, Y float64
}

// Block is the content of one grid cell.
type Block struct {
	ID      int   // Slot index, never changes
	Kind    Kind  // Color category or KindEmpty
	State   State // Only changed through ChangeState
	Counter int   // Ticks left in the current state

	Offset  Vec2 // Render displacement while swapping
	MoveDir int  // +1 for the left block of a swap, -1 for the right one

	ClearTime         int // Elapsed clear ticks after which this block pops
	ClearStartCounter int // Counter value the clear started from

	// Chainable is set when the block dropped because a clear emptied the
	// cell under it. A match containing a chainable block extends the chain.
	Chainable bool
}

// IsEmpty reports whether the slot holds no block.
func (b *Block) IsEmpty() bool {
	return b.Kind == KindEmpty
}

// IsComboable reports whether the block can take part in a match.
func (b *Block) IsComboable() bool {
	return !b.IsEmpty() && b.State == StateIdle
}

// IsComboableWith reports whether the block can join a match of the given kind.
func (b *Block) IsComboableWith(kind Kind) bool {
	return b.IsComboable() && b.Kind == kind
}

// IsSwappable reports whether b may trade places with other.
// above is the block on top of b, nil on the top row. A cell that the swap
// would leave empty must not have a falling or swapping block above it.
func (b *Block) IsSwappable(other, above *Block) bool {
	if b.locked() || other.locked() {
		return false
	}
	if other.IsEmpty() && above != nil && !above.IsEmpty() &&
		(above.State == StateFall || above.State == StateSwap) {
		return false
	}
	return true
}

// locked reports whether the block is busy with an animation that a swap must not interrupt.
func (b *Block) locked() bool {
	return b.State == StateClear || b.State == StateFall || b.State == StateSwap
}

// SwapContent exchanges what the two blocks carry. Identity, state and
// animation fields stay with the slot.
func (b *Block) SwapContent(other *Block) {
	b.Kind, other.Kind = other.Kind, b.Kind
	b.Chainable, other.Chainable = other.Chainable, b.Chainable
}

// ChangeState moves b into target, dropping fields that belong to other states.
// Callers set the new state's own fields (counter, offsets, clear timing).
func ChangeState(b *Block, target State) {
	switch target {
	case StateIdle:
		b.Counter = 0
		b.Offset = Vec2{}
		b.MoveDir = 0
		b.ClearTime = 0
		b.ClearStartCounter = 0
	case StateSwap:
		b.ClearTime = 0
		b.ClearStartCounter = 0
	case StateClear:
		b.Offset = Vec2{}
		b.MoveDir = 0
	case StateFall:
		b.Counter = 0
		b.Offset = Vec2{}
		b.MoveDir = 0
		b.ClearTime = 0
		b.ClearStartCounter = 0
	}
	b.State = target
}

// Advance runs one tick of b's timed states. It returns true when a finished
// clear left the slot empty.
func Advance(b *Block) bool {
	switch b.State {
	case StateSwap:
		if b.Counter > 0 {
			// Slide the offset linearly to zero over the remaining ticks.
			b.Offset.X -= b.Offset.X / float64(b.Counter)
			b.Counter--
		}
		if b.Counter == 0 {
			ChangeState(b, StateIdle)
		}
	case StateClear:
		if b.Counter > 0 {
			b.Counter--
		}
		if b.Counter == 0 {
			b.Kind = KindEmpty
			b.Chainable = false
			ChangeState(b, StateIdle)
			return true
		}
	}
	return false
}

// Popped reports whether a clearing block has reached its pop time and
// should no longer be drawn.
func (b *Block) Popped() bool {
	return b.State == StateClear && b.ClearStartCounter-b.Counter >= b.ClearTime
}

// reset returns the block to an idle state holding kind.
func (b *Block) reset(kind Kind) {
	ChangeState(b, StateIdle)
	b.Kind = kind
	b.Chainable = false
}
