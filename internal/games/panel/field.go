package panel

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/panel-arcade/internal/config"
	"github.com/vovakirdan/panel-arcade/internal/core"
)

// Field is one player's playfield: the grid, its cursor, and match bookkeeping.
// A Field is not safe for concurrent use; each one must be ticked by a single
// goroutine, but separate fields share nothing.
type Field struct {
	grid    *Grid
	cursor  Cursor
	clears  ClearState
	edges   *EdgeDetector
	cfg     config.PanelConfig
	gen     KindGenerator
	settler Settler
	logger  *log.Logger
	round   int

	// SignalRaise mirrors the raise action each tick for the stack-raising system.
	SignalRaise bool
}

// NewField creates a field and generates its first stack.
// A nil logger discards clear-event logging.
func NewField(cfg config.PanelConfig, gen KindGenerator, logger *log.Logger) *Field {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	f := &Field{
		grid:    NewGrid(),
		clears:  NewClearState(),
		edges:   NewEdgeDetector(cfg.Input.RepeatDelay),
		cfg:     cfg,
		gen:     gen,
		settler: Gravity{},
		logger:  logger,
	}
	f.Reset()
	return f
}

// SetSettler replaces the gravity collaborator. A nil settler disables settling.
func (f *Field) SetSettler(s Settler) {
	f.settler = s
}

// Reset starts a new round, including input edge state.
func (f *Field) Reset() {
	f.edges.Reset()
	f.resetRound()
}

// resetRound regenerates every block kind and restores the cursor and counters.
func (f *Field) resetRound() {
	kinds := f.gen.Generate(f.cfg.Field.StartRows, f.cfg.Field.Categories)
	if len(kinds) != Blocks {
		panic(fmt.Sprintf("panel: kind generator returned %d kinds, want %d", len(kinds), Blocks))
	}

	for i, kind := range kinds {
		f.grid.Block(i).reset(kind)
	}
	f.clears.Reset()
	f.cursor = NewCursor(f.cfg.Field.CursorX, f.cfg.Field.CursorY)
	f.SignalRaise = false
	f.round++
}

// Tick advances the field by one frame. Input is applied first, then the
// grid is scanned for matches, then block timers and gravity run.
// It returns the clear batch started this tick, if any.
func (f *Field) Tick(src core.HeldSource) (ClearEvent, bool) {
	f.control(src)
	f.SignalRaise = src.Held(core.ActionRaise)

	ScanMatches(f.grid, &f.clears)
	event, cleared := ApplyClears(f.grid, &f.clears, f.cfg.Timing)
	if cleared {
		f.logger.Info("clear",
			"chain", event.Chain,
			"combo", event.Combo,
			"blocks_cleared", event.BlocksCleared,
		)
	}
	decayChainable(f.grid)

	f.advance()
	return event, cleared
}

// control applies cursor movement, round reset and swap input.
func (f *Field) control(src core.HeldSource) {
	// Directions are independent; holding two moves diagonally.
	if f.edges.Hold(src, core.ActionUp) {
		f.cursor.MoveUp()
	}
	if f.edges.Hold(src, core.ActionDown) {
		f.cursor.MoveDown()
	}
	if f.edges.Hold(src, core.ActionLeft) {
		f.cursor.MoveLeft()
	}
	if f.edges.Hold(src, core.ActionRight) {
		f.cursor.MoveRight()
	}

	if f.edges.Press(src, core.ActionSpace) {
		f.resetRound()
	}

	if f.edges.Press(src, core.ActionSwap) {
		x, y := f.cursor.Cell()
		AttemptSwap(f.grid, x, y, f.cfg.Timing.Swap)
	}

	f.cursor.Animate()
}

// advance runs block timers, flags blocks left hanging by finished clears,
// and lets the settler drop them.
func (f *Field) advance() {
	var vacated []int
	f.grid.Each(func(b *Block) {
		if Advance(b) {
			vacated = append(vacated, b.ID)
		}
	})
	for _, id := range vacated {
		markChainable(f.grid, id)
	}

	if f.settler != nil {
		f.settler.Settle(f.grid)
	}
}

// Grid returns the field's grid.
func (f *Field) Grid() *Grid {
	return f.grid
}

// Cursor returns a copy of the cursor.
func (f *Field) Cursor() Cursor {
	return f.cursor
}

// Clears returns the match and chain counters.
func (f *Field) Clears() *ClearState {
	return &f.clears
}

// Round counts how many times the stack has been generated.
func (f *Field) Round() int {
	return f.round
}

// Busy reports whether any block is mid-animation.
func (f *Field) Busy() bool {
	busy := false
	f.grid.Each(func(b *Block) {
		if b.State != StateIdle {
			busy = true
		}
	})
	return busy
}
