package panel

import (
	"github.com/vovakirdan/panel-arcade/internal/config"
	"github.com/vovakirdan/panel-arcade/internal/core"
)

// fixedGenerator hands out prepared layouts in order, repeating the last one.
type fixedGenerator struct {
	layouts [][]Kind
	calls   int
}

func (f *fixedGenerator) Generate(rows, categories int) []Kind {
	i := min(f.calls, len(f.layouts)-1)
	f.calls++
	out := make([]Kind, len(f.layouts[i]))
	copy(out, f.layouts[i])
	return out
}

// layout builds a full slot list from rows given bottom row first.
// '.' is empty, digits are kinds.
func layout(rows ...string) []Kind {
	kinds := make([]Kind, Blocks)
	for i := range kinds {
		kinds[i] = KindEmpty
	}
	for y, row := range rows {
		for x, r := range row {
			if r == '.' {
				continue
			}
			kinds[Index(x, y)] = Kind(r - '0')
		}
	}
	return kinds
}

// gridFrom creates a grid holding the given layout, all blocks idle.
func gridFrom(rows ...string) *Grid {
	g := NewGrid()
	for i, k := range layout(rows...) {
		g.Block(i).Kind = k
	}
	return g
}

func testConfig() config.PanelConfig {
	cfg := config.DefaultPanelConfig()
	cfg.Field.CursorX = 0
	cfg.Field.CursorY = 1
	return cfg
}

func newTestField(layouts ...[]Kind) (*Field, *fixedGenerator) {
	gen := &fixedGenerator{layouts: layouts}
	return NewField(testConfig(), gen, nil), gen
}

// held returns a frame with the given actions held.
func held(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// idle ticks the field n times with no input and collects clear events.
func idle(f *Field, n int) []ClearEvent {
	var events []ClearEvent
	for range n {
		if ev, ok := f.Tick(core.NewInputFrame()); ok {
			events = append(events, ev)
		}
	}
	return events
}
