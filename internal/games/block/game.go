// Package block implements Block Puzzle: place pieces on an 8x8 board and
// clear full rows and columns.
package block

import (
	"github.com/vovakirdan/erika-arcade/internal/config"
	"github.com/vovakirdan/erika-arcade/internal/core"
	"github.com/vovakirdan/erika-arcade/internal/registry"
)

// Slots is the number of active pieces.
const Slots = 3

// Game implements the Block Puzzle mode.
type Game struct {
	cfg      config.BlockConfig
	fixedCfg bool
	rt       core.RuntimeConfig
	vp       core.Viewport
	rng      core.Rand

	board    Board
	pieces   [Slots]Piece
	next     Piece
	selected int
	row, col int // cursor, top-left anchor of the selected piece

	score     int
	gameOver  bool
	tickCount int
	demoTimer float64
}

// New creates a Block Puzzle game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed config, skipping the search path.
func NewWithConfig(cfg config.BlockConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "block"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Block Puzzle"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadBlock(rt.ConfigPath)
		if err != nil {
			cfg = config.DefaultBlockConfig()
		}
		g.cfg = cfg
	}
	if g.cfg.Board.Colors <= 0 {
		g.cfg.Board.Colors = len(tileColors)
	}
	g.rt = rt
	g.vp = rt.Viewport()
	g.rng = rt.RNG()

	g.board = Board{}
	g.score = 0
	g.gameOver = false
	g.tickCount = 0
	g.demoTimer = 0
	g.row, g.col = 0, 0

	g.deal(true)

	if rt.Demo {
		for i := 0; i < g.cfg.Board.DemoCells; i++ {
			r, c := g.rng.Intn(BoardSize), g.rng.Intn(BoardSize)
			if g.rng.Float64() > 0.5 {
				g.board[r][c] = g.randomColor()
			} else {
				g.board[r][c] = 0
			}
		}
		return
	}
	if !g.board.HasAnyValidMove(g.pieces[:]) {
		g.gameOver = true
	}
}

// Resize records the viewport; layout is derived from the screen at render time.
func (g *Game) Resize(vp core.Viewport) {
	g.vp = vp
}

func (g *Game) randomColor() int {
	return 1 + g.rng.Intn(g.cfg.Board.Colors)
}

func (g *Game) randomPiece() Piece {
	return Piece{Shape: Shapes[g.rng.Intn(len(Shapes))], Color: g.randomColor()}
}

// deal draws three pieces and a lookahead. With ensureFit it retries up to
// DealAttempts times for a hand where at least one piece fits; the last
// attempt is kept either way.
func (g *Game) deal(ensureFit bool) {
	for attempt := 1; ; attempt++ {
		for i := range g.pieces {
			g.pieces[i] = g.randomPiece()
		}
		g.next = g.randomPiece()
		if !ensureFit || attempt >= g.cfg.Board.DealAttempts || g.board.HasAnyValidMove(g.pieces[:]) {
			break
		}
	}
	g.selected = 0
	g.clampCursor()
}

// Select makes slot i the active piece.
func (g *Game) Select(i int) {
	if i < 0 || i >= Slots {
		return
	}
	g.selected = i
	g.clampCursor()
}

// MoveCursor shifts the cursor, keeping the selected piece on the board.
func (g *Game) MoveCursor(dRow, dCol int) {
	g.row += dRow
	g.col += dCol
	g.clampCursor()
}

func (g *Game) clampCursor() {
	p := g.pieces[g.selected]
	g.row = core.Clamp(g.row, 0, max(0, BoardSize-p.H))
	g.col = core.Clamp(g.col, 0, max(0, BoardSize-p.W))
}

// TryPlace places slot index at (row, col). A rejected placement changes
// nothing. On success it clears lines, awards k²×LineScore, refills the slot
// from the lookahead and re-checks for remaining moves.
func (g *Game) TryPlace(index, row, col int) (placed bool, lines int) {
	if g.gameOver || index < 0 || index >= Slots {
		return false, 0
	}
	p := g.pieces[index]
	if !g.board.CanPlace(p, row, col) {
		return false, 0
	}

	g.board.Stamp(p, row, col)
	lines = g.board.ClearLines()
	g.score += LineScore(lines, g.cfg.Board.LineScore)

	g.pieces[index] = g.next
	g.next = g.randomPiece()
	g.selected = index
	g.clampCursor()

	if !g.board.HasAnyValidMove(g.pieces[:]) {
		g.gameOver = true
	}
	return true, lines
}

// GhostValid reports whether the selected piece fits at the cursor.
func (g *Game) GhostValid() bool {
	return g.board.CanPlace(g.pieces[g.selected], g.row, g.col)
}

// Step applies at most one control per action and advances the demo timer.
func (g *Game) Step(in core.InputFrame, dt float64) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	if g.rt.Demo {
		g.demoTimer += dt
		if g.demoTimer > float64(g.cfg.Board.DemoCycleTime) {
			g.demoTimer = 0
			g.Select((g.selected + 1) % Slots)
		}
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionSlot1):
		g.Select(0)
	case in.Has(core.ActionSlot2):
		g.Select(1)
	case in.Has(core.ActionSlot3):
		g.Select(2)
	case in.Has(core.ActionCycle):
		g.Select((g.selected + 1) % Slots)
	}

	if in.Has(core.ActionUp) {
		g.MoveCursor(-1, 0)
	}
	if in.Has(core.ActionDown) {
		g.MoveCursor(1, 0)
	}
	if in.Has(core.ActionLeft) {
		g.MoveCursor(0, -1)
	}
	if in.Has(core.ActionRight) {
		g.MoveCursor(0, 1)
	}

	lines := 0
	if in.Has(core.ActionPrimary) || in.Has(core.ActionConfirm) {
		_, lines = g.TryPlace(g.selected, g.row, g.col)
	}

	return core.StepResult{State: g.State(), Passed: lines}
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

// Pieces returns the active pieces.
func (g *Game) Pieces() [Slots]Piece {
	return g.pieces
}

// Selected returns the active slot.
func (g *Game) Selected() int {
	return g.selected
}

// Cursor returns the cursor anchor.
func (g *Game) Cursor() (row, col int) {
	return g.row, g.col
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

func init() {
	registry.Register("block", func() registry.Game {
		return New()
	}, registry.Order(5), registry.SoloOnly())
}
