package core

import "testing"

func TestViewportFor(t *testing.T) {
	tests := []struct {
		cols, rows int
		expectedW  float64
	}{
		{80, 24, 500},
		{200, 30, 1000},
		{40, 24, MinCanvasWidth},
		{0, 0, MinCanvasWidth},
	}

	for _, tc := range tests {
		vp := ViewportFor(tc.cols, tc.rows)
		if vp.W != tc.expectedW || vp.H != CanvasHeight {
			t.Errorf("ViewportFor(%d, %d) = %+v, expected W=%v H=%v", tc.cols, tc.rows, vp, tc.expectedW, CanvasHeight)
		}
	}
}

func TestProjectionRect(t *testing.T) {
	p := NewProjection(Viewport{W: 500, H: 300}, 100, 30)

	r := p.Rect(NewRectF(50, 30, 20, 20))
	if r.X != 10 || r.Y != 3 || r.W != 4 || r.H != 2 {
		t.Errorf("Rect() = %+v, expected {10 3 4 2}", r)
	}

	tiny := p.Rect(NewRectF(0, 0, 1, 1))
	if tiny.W < 1 || tiny.H < 1 {
		t.Errorf("non-empty rect should cover a cell, got %+v", tiny)
	}
}
