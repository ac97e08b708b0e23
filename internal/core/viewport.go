package core

import "math"

// Logical canvas dimensions. Height is fixed; width follows the surface aspect.
const (
	CanvasHeight   = 300.0
	MinCanvasWidth = 480.0
)

// Viewport is the logical canvas size in pixels.
type Viewport struct {
	W, H float64
}

// ViewportFor derives the logical canvas for a cols x rows character surface.
// Terminal cells are roughly twice as tall as they are wide.
func ViewportFor(cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 {
		return Viewport{W: MinCanvasWidth, H: CanvasHeight}
	}
	pxPerRow := CanvasHeight / float64(rows)
	w := float64(cols) * pxPerRow / 2
	if w < MinCanvasWidth {
		w = MinCanvasWidth
	}
	return Viewport{W: math.Round(w), H: CanvasHeight}
}

// Projection maps logical canvas coordinates onto screen cells.
type Projection struct {
	vp         Viewport
	cols, rows float64
}

// NewProjection builds a projection from vp onto a cols x rows screen.
func NewProjection(vp Viewport, cols, rows int) Projection {
	if vp.W <= 0 || vp.H <= 0 {
		vp = Viewport{W: float64(cols), H: float64(rows)}
	}
	return Projection{vp: vp, cols: float64(cols), rows: float64(rows)}
}

func (p Projection) fx(x float64) float64 { return x * p.cols / p.vp.W }
func (p Projection) fy(y float64) float64 { return y * p.rows / p.vp.H }

// X projects a logical x coordinate to a column.
func (p Projection) X(x float64) int {
	return int(math.Floor(p.fx(x)))
}

// Y projects a logical y coordinate to a row.
func (p Projection) Y(y float64) int {
	return int(math.Floor(p.fy(y)))
}

// Rect projects a logical rectangle. Non-empty rectangles cover at least one cell.
func (p Projection) Rect(r RectF) Rect {
	x0, y0 := p.X(r.X), p.Y(r.Y)
	x1 := int(math.Ceil(p.fx(r.Right())))
	y1 := int(math.Ceil(p.fy(r.Bottom())))
	w, h := x1-x0, y1-y0
	if r.W > 0 && w < 1 {
		w = 1
	}
	if r.H > 0 && h < 1 {
		h = 1
	}
	return NewRect(x0, y0, w, h)
}
