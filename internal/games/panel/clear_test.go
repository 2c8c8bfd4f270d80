package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/panel-arcade/internal/config"
)

var defaultTiming = config.TimingConfig{Flash: 44, Face: 10, Pop: 10, Swap: 3}

func TestScanHorizontalTriple(t *testing.T) {
	g := gridFrom("111234")
	c := NewClearState()

	ScanMatches(g, &c)

	assert.Equal(t, []int{0, 1, 2}, c.Queue())
}

func TestScanVerticalTriple(t *testing.T) {
	g := gridFrom("2.....", "2.....", "2.....", "3.....")
	c := NewClearState()

	ScanMatches(g, &c)

	assert.Equal(t, []int{Index(0, 0), Index(0, 1), Index(0, 2)}, c.Queue())
}

func TestScanDeduplicatesOverlaps(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"four in a row", []string{"1111.."}, 4},
		{"five in a row", []string{"11111."}, 5},
		{"L shape", []string{"111...", "1.....", "1....."}, 5},
		{"T shape", []string{"222...", ".2....", ".2...."}, 5},
		{"two separate runs", []string{"111222"}, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFrom(tt.rows...)
			c := NewClearState()

			ScanMatches(g, &c)

			ids := c.Queue()
			assert.Len(t, ids, tt.want)
			seen := map[int]bool{}
			for _, id := range ids {
				assert.False(t, seen[id], "id %d queued twice", id)
				seen[id] = true
			}
		})
	}
}

func TestScanIgnoresUncomboableBlocks(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{"clearing", StateClear},
		{"swapping", StateSwap},
		{"falling", StateFall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := gridFrom("111...")
			ChangeState(g.Block(1), tt.state)
			c := NewClearState()

			ScanMatches(g, &c)

			assert.Empty(t, c.Queue())
		})
	}
}

func TestScanEdgesAreNotMatches(t *testing.T) {
	// Runs of two at the right edge and top row must not fault or match.
	g := gridFrom("....11")
	g.Block(Index(0, Rows-1)).Kind = 3
	g.Block(Index(0, Rows-2)).Kind = 3
	c := NewClearState()

	ScanMatches(g, &c)

	assert.Empty(t, c.Queue())
}

func TestApplyClearsStaggersTiming(t *testing.T) {
	g := gridFrom("111234")
	c := NewClearState()
	ScanMatches(g, &c)

	ev, ok := ApplyClears(g, &c, defaultTiming)
	require.True(t, ok)

	wantClear := []int{54, 64, 74}
	for i, id := range []int{0, 1, 2} {
		b := g.Block(id)
		assert.Equal(t, StateClear, b.State)
		assert.Equal(t, wantClear[i], b.ClearTime)
		assert.Equal(t, 84, b.Counter)
		assert.Equal(t, 84, b.ClearStartCounter)
	}

	assert.Equal(t, 3, ev.Combo)
	assert.Equal(t, 1, ev.Chain)
	assert.Equal(t, 3, ev.BlocksCleared)
	assert.Equal(t, []int{0, 1, 2}, ev.IDs)
	assert.Empty(t, c.Queue(), "queue drained")
	assert.Equal(t, StateIdle, g.Block(3).State)
}

func TestApplyClearsEmptyQueue(t *testing.T) {
	g := gridFrom("123123")
	c := NewClearState()
	ScanMatches(g, &c)

	_, ok := ApplyClears(g, &c, defaultTiming)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Chain)
	assert.Zero(t, c.BlocksCleared)
}

func TestChainScoring(t *testing.T) {
	t.Run("no chainable resets chain", func(t *testing.T) {
		g := gridFrom("111...")
		c := NewClearState()
		c.Chain = 4
		c.LastChain = 4

		ScanMatches(g, &c)
		ev, ok := ApplyClears(g, &c, defaultTiming)
		require.True(t, ok)

		assert.Equal(t, 1, ev.Chain)
		assert.Equal(t, 1, c.Chain)
		assert.Equal(t, 4, c.LastChain)
	})

	t.Run("chainable block extends chain", func(t *testing.T) {
		g := gridFrom("111...")
		g.Block(2).Chainable = true
		c := NewClearState()
		c.Chain = 2
		c.LastChain = 2

		ScanMatches(g, &c)
		ev, ok := ApplyClears(g, &c, defaultTiming)
		require.True(t, ok)

		assert.Equal(t, 3, ev.Chain)
		assert.True(t, ev.Chained())
		assert.Equal(t, 3, c.LastChain)
	})

	t.Run("last chain keeps the deeper record", func(t *testing.T) {
		g := gridFrom("111...")
		g.Block(0).Chainable = true
		c := NewClearState()
		c.Chain = 1
		c.LastChain = 6

		ScanMatches(g, &c)
		_, ok := ApplyClears(g, &c, defaultTiming)
		require.True(t, ok)

		assert.Equal(t, 2, c.Chain)
		assert.Equal(t, 6, c.LastChain)
	})
}

func TestBlocksClearedAccumulates(t *testing.T) {
	g := gridFrom("1111..")
	c := NewClearState()
	ScanMatches(g, &c)
	_, ok := ApplyClears(g, &c, defaultTiming)
	require.True(t, ok)

	g2 := gridFrom("222...")
	ScanMatches(g2, &c)
	ev, ok := ApplyClears(g2, &c, defaultTiming)
	require.True(t, ok)

	assert.Equal(t, 7, c.BlocksCleared)
	assert.Equal(t, 7, ev.BlocksCleared)
	assert.Equal(t, 3, ev.Combo)
}

func TestClearStateReset(t *testing.T) {
	c := NewClearState()
	c.enqueue(5)
	c.ComboCounter = 3
	c.Chain = 4
	c.LastChain = 5
	c.BlocksCleared = 30

	c.Reset()

	assert.Empty(t, c.Queue())
	assert.Zero(t, c.ComboCounter)
	assert.Equal(t, 1, c.Chain)
	assert.Equal(t, 1, c.LastChain)
	assert.Zero(t, c.BlocksCleared)

	// Membership index was cleared too
	c.enqueue(5)
	assert.Equal(t, []int{5}, c.Queue())
}
