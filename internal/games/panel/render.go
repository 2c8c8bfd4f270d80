package panel

import (
	"fmt"
	"math"

	"github.com/vovakirdan/panel-arcade/internal/core"
)

// Layout constants
const (
	cellW          = 3              // Screen columns per grid cell
	boardW         = Cols*cellW + 2 // Board width including border
	boardH         = Rows + 2       // Board height including border
	hudGap         = 2              // Columns between board and HUD
	hudW           = 22             // HUD width
	eventShowTicks = 90             // How long the last chain banner stays up

	minScreenW = boardW + hudGap + hudW
	minScreenH = boardH + 2
)

// kindGlyphs gives each kind a distinct shape as well as a color.
var kindGlyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '✚', '▼'}

// Render draws the board, cursor and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.field == nil {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("need %dx%d", minScreenW, minScreenH), core.ColorGray)
		return
	}

	ox := (dst.Width() - minScreenW) / 2
	oy := (dst.Height() - boardH) / 2

	dst.DrawBox(core.NewRect(ox, oy, boardW, boardH), core.ColorGray)
	g.renderBlocks(dst, ox+1, oy+1)
	g.renderCursor(dst, ox+1, oy+1)
	g.renderHUD(dst, ox+boardW+hudGap, oy)
}

// screenRow converts a grid row (0 at the bottom) to a board-relative screen row.
func screenRow(y int) int {
	return Rows - 1 - y
}

func (g *Game) renderBlocks(dst *core.Screen, left, top int) {
	g.field.Grid().Each(func(b *Block) {
		if b.IsEmpty() || b.Popped() {
			return
		}
		x, y := Coord(b.ID)
		shift := int(math.Round(b.Offset.X / SwapDistance * cellW))
		sx := left + x*cellW + 1 + shift
		sy := top + screenRow(y)

		dst.SetColor(sx, sy, g.glyph(b), core.Palette(int(b.Kind)))
	})
}

// glyph picks the rune for a block based on its state.
func (g *Game) glyph(b *Block) rune {
	base := kindGlyphs[int(b.Kind)%len(kindGlyphs)]
	if b.State != StateClear {
		return base
	}

	elapsed := b.ClearStartCounter - b.Counter
	if elapsed < g.cfg.Timing.Flash {
		if (elapsed/4)%2 == 0 {
			return base
		}
		return '○'
	}
	return '✱'
}

func (g *Game) renderCursor(dst *core.Screen, left, top int) {
	c := g.field.Cursor()
	x, y := c.Cell()
	color := core.ColorBrightWhite
	if c.Sprite()%4 >= 2 {
		color = core.ColorGray
	}

	sy := top + screenRow(y)
	dst.SetColor(left+x*cellW, sy, '[', color)
	dst.SetColor(left+(x+2)*cellW-1, sy, ']', color)
}

type hudLine struct {
	text  string
	color core.Color
}

func (g *Game) renderHUD(dst *core.Screen, hx, hy int) {
	clears := g.field.Clears()
	lines := []hudLine{
		{g.Title(), core.ColorBrightCyan},
		{"", core.ColorDefault},
		{fmt.Sprintf("Score    %6d", g.score), core.ColorWhite},
		{fmt.Sprintf("Chain    %6d", clears.Chain), core.ColorWhite},
		{fmt.Sprintf("Best     %6d", clears.LastChain), core.ColorWhite},
		{fmt.Sprintf("Cleared  %6d", clears.BlocksCleared), core.ColorWhite},
	}

	if g.mode == ModeTimeAttack {
		secs := g.remainingTicks() / uint64(g.tickRate)
		lines = append(lines, hudLine{fmt.Sprintf("Time      %d:%02d", secs/60, secs%60), core.ColorYellow})
	}

	for i, l := range lines {
		dst.DrawText(hx, hy+i, l.text, l.color)
	}

	row := hy + len(lines) + 1
	if g.lastEventTick > 0 && g.tick-g.lastEventTick < eventShowTicks {
		switch {
		case g.lastEvent.Chained():
			dst.DrawText(hx, row, fmt.Sprintf("%d CHAIN!", g.lastEvent.Chain), core.ColorBrightYellow)
		case g.lastEvent.Combo > 3:
			dst.DrawText(hx, row, fmt.Sprintf("COMBO %d!", g.lastEvent.Combo), core.ColorBrightGreen)
		}
	}

	switch {
	case g.gameOver:
		dst.DrawText(hx, row+1, "TIME UP", core.ColorBrightRed)
		dst.DrawText(hx, row+2, "R restart  B menu", core.ColorGray)
	case g.paused:
		dst.DrawText(hx, row+1, "PAUSED", core.ColorBrightYellow)
	}

	help := []string{"arrows move", "x/z  swap", "space new stack", "p pause  q quit"}
	for i, h := range help {
		dst.DrawText(hx, hy+boardH-len(help)+i, h, core.ColorGray)
	}
}
