package panel

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick          uint64
	Mode          string
	Score         int
	CursorX       int
	CursorY       int
	Chain         int
	LastChain     int
	BlocksCleared int
	Kinds         [Blocks]Kind
	States        [Blocks]State
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Score: g.score,
		State: state,
	}
	if g.field == nil {
		return snap
	}

	snap.CursorX, snap.CursorY = g.field.Cursor().Cell()
	clears := g.field.Clears()
	snap.Chain = clears.Chain
	snap.LastChain = clears.LastChain
	snap.BlocksCleared = clears.BlocksCleared
	snap.Kinds = g.field.Grid().Kinds()
	g.field.Grid().Each(func(b *Block) {
		snap.States[b.ID] = b.State
	})
	return snap
}
