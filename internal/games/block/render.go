package block

import (
	"fmt"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

var tileColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorOrange,
	core.ColorBrightMagenta,
	core.ColorCyan,
}

func tileColor(c int) core.Color {
	if c <= 0 {
		return core.ColorDefault
	}
	return tileColors[(c-1)%len(tileColors)]
}

// layout is the cell geometry for one render.
type layout struct {
	cw, ch         int // screen cells per board cell
	boardX, boardY int
	panelX         int
	slotH          int
}

func computeLayout(w, h int) layout {
	ch := max(1, (h-3)/BoardSize)
	cw := ch * 2
	for cw > 1 && BoardSize*cw+2+5*2+12 > w {
		cw--
	}
	boardW := BoardSize*cw + 2
	l := layout{
		cw:     cw,
		ch:     ch,
		boardX: max(0, (w-boardW-14)/2),
		boardY: max(1, (h-BoardSize*ch-2)/2+1),
	}
	l.panelX = l.boardX + boardW + 2
	l.slotH = 5 // tallest shape
	return l
}

// Render draws the board, the ghost preview, the piece panel and the HUD.
func (g *Game) Render(dst *core.Screen) {
	l := computeLayout(dst.Width(), dst.Height())
	boardW := BoardSize*l.cw + 2
	boardH := BoardSize*l.ch + 2

	dst.DrawBox(core.NewRect(l.boardX, l.boardY-1, boardW, boardH))
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			area := g.cellRect(l, r, c)
			if v := g.board[r][c]; v != 0 {
				core.DrawSpriteTinted(dst, g.rt.Sprites, "tile", 0, area, tileColor(v))
			} else {
				dst.FillRect(area, '·', core.ColorGray)
			}
		}
	}

	if !g.rt.Demo && !g.gameOver {
		p := g.pieces[g.selected]
		ghost, color := '▒', tileColor(p.Color)
		if !g.GhostValid() {
			ghost, color = '░', core.ColorBrightRed
		}
		for _, cell := range p.Cells {
			r, c := g.row+cell.Y, g.col+cell.X
			if r < BoardSize && c < BoardSize && g.board[r][c] == 0 {
				dst.FillRect(g.cellRect(l, r, c), ghost, color)
			}
		}
	}

	for i, p := range g.pieces {
		y := l.boardY + i*l.slotH
		marker := "  "
		if i == g.selected {
			marker = "▶ "
		}
		dst.DrawText(l.panelX, y, fmt.Sprintf("%s%d", marker, i+1))
		drawMini(dst, p, l.panelX+4, y)
	}
	nextY := l.boardY + Slots*l.slotH
	dst.DrawTextColor(l.panelX, nextY, "NEXT", core.ColorGray)
	drawMini(dst, g.next, l.panelX+5, nextY)

	dst.DrawText(l.boardX, 0, fmt.Sprintf("Score: %d", g.score))
}

func (g *Game) cellRect(l layout, r, c int) core.Rect {
	return core.NewRect(l.boardX+1+c*l.cw, l.boardY+r*l.ch, l.cw, l.ch)
}

// drawMini draws a piece at one screen row per cell, two columns wide.
func drawMini(dst *core.Screen, p Piece, x, y int) {
	for _, c := range p.Cells {
		dst.FillRect(core.NewRect(x+c.X*2, y+c.Y, 2, 1), '█', tileColor(p.Color))
	}
}
