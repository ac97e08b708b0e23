package block

// BoardSize is the board dimension.
const BoardSize = 8

// Board holds cell colors; 0 is empty, 1..N are palette colors.
type Board [BoardSize][BoardSize]int

// Cell is a shape offset: X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Shape is a set of offsets with its bounding box.
type Shape struct {
	Cells []Cell
	W, H  int
}

// Piece is a colored shape.
type Piece struct {
	Shape
	Color int
}

func shape(cells ...Cell) Shape {
	s := Shape{Cells: cells}
	for _, c := range cells {
		s.W = max(s.W, c.X+1)
		s.H = max(s.H, c.Y+1)
	}
	return s
}

// Shapes is the fixed shape set pieces are drawn from.
var Shapes = []Shape{
	shape(Cell{0, 0}),
	shape(Cell{0, 0}, Cell{1, 0}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{3, 0}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{3, 0}, Cell{4, 0}),
	shape(Cell{0, 0}, Cell{0, 1}),
	shape(Cell{0, 0}, Cell{0, 1}, Cell{0, 2}),
	shape(Cell{0, 0}, Cell{0, 1}, Cell{0, 2}, Cell{0, 3}),
	shape(Cell{0, 0}, Cell{0, 1}, Cell{0, 2}, Cell{0, 3}, Cell{0, 4}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{0, 1}, Cell{1, 1}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{0, 1}),
	shape(Cell{0, 0}, Cell{0, 1}, Cell{0, 2}, Cell{1, 2}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{2, 1}),
	shape(Cell{1, 0}, Cell{1, 1}, Cell{1, 2}, Cell{0, 2}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{1, 1}, Cell{2, 1}),
	shape(Cell{1, 0}, Cell{0, 1}, Cell{1, 1}, Cell{2, 1}),
	shape(Cell{0, 1}, Cell{1, 0}, Cell{1, 1}, Cell{2, 0}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{0, 1}, Cell{1, 1}, Cell{2, 1}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{0, 1}, Cell{1, 1}, Cell{2, 1}, Cell{0, 2}, Cell{1, 2}, Cell{2, 2}),
	shape(Cell{0, 0}, Cell{1, 0}, Cell{2, 0}, Cell{1, 1}),
	shape(Cell{0, 0}, Cell{0, 1}, Cell{1, 1}, Cell{2, 1}),
}

// CanPlace reports whether every cell of p lands in-bounds on an empty cell
// when its top-left is at (row, col).
func (b *Board) CanPlace(p Piece, row, col int) bool {
	for _, c := range p.Cells {
		r, cc := row+c.Y, col+c.X
		if r < 0 || r >= BoardSize || cc < 0 || cc >= BoardSize {
			return false
		}
		if b[r][cc] != 0 {
			return false
		}
	}
	return true
}

// Stamp writes p's color into the board. Callers check CanPlace first.
func (b *Board) Stamp(p Piece, row, col int) {
	for _, c := range p.Cells {
		b[row+c.Y][col+c.X] = p.Color
	}
}

// ClearLines empties every row and column that was full before any clearing,
// so an intersection cell is cleared once. Returns rows+cols cleared.
func (b *Board) ClearLines() int {
	var fullRows, fullCols []int

	for r := 0; r < BoardSize; r++ {
		full := true
		for c := 0; c < BoardSize; c++ {
			if b[r][c] == 0 {
				full = false
				break
			}
		}
		if full {
			fullRows = append(fullRows, r)
		}
	}
	for c := 0; c < BoardSize; c++ {
		full := true
		for r := 0; r < BoardSize; r++ {
			if b[r][c] == 0 {
				full = false
				break
			}
		}
		if full {
			fullCols = append(fullCols, c)
		}
	}

	for _, r := range fullRows {
		for c := 0; c < BoardSize; c++ {
			b[r][c] = 0
		}
	}
	for _, c := range fullCols {
		for r := 0; r < BoardSize; r++ {
			b[r][c] = 0
		}
	}
	return len(fullRows) + len(fullCols)
}

// Fits reports whether p fits at any top-left anchor.
func (b *Board) Fits(p Piece) bool {
	for r := 0; r <= BoardSize-p.H; r++ {
		for c := 0; c <= BoardSize-p.W; c++ {
			if b.CanPlace(p, r, c) {
				return true
			}
		}
	}
	return false
}

// HasAnyValidMove reports whether any of pieces fits somewhere.
func (b *Board) HasAnyValidMove(pieces []Piece) bool {
	for _, p := range pieces {
		if b.Fits(p) {
			return true
		}
	}
	return false
}

// LineScore returns the award for clearing k lines at once: k² × unit.
func LineScore(k, unit int) int {
	return k * k * unit
}
