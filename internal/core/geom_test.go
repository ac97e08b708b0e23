package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(3, 4, 10, 2)
	if r.Right() != 13 || r.Bottom() != 6 {
		t.Errorf("Right, Bottom = %d, %d; want 13, 6", r.Right(), r.Bottom())
	}

	f := NewRectF(1.5, 2, 4, 0.5)
	if f.Right() != 5.5 || f.Bottom() != 2.5 {
		t.Errorf("RectF Right, Bottom = %v, %v; want 5.5, 2.5", f.Right(), f.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi int
		want        int
	}{
		{-2, 0, 7, 0},
		{3, 0, 7, 3},
		{9, 0, 7, 7},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRectFInsetAndTouches(t *testing.T) {
	actor := NewRectF(60, 220, 40, 59).Inset(8)
	if actor.X != 68 || actor.Right() != 92 || actor.Y != 228 || actor.Bottom() != 271 {
		t.Fatalf("Inset(8) = %+v", actor)
	}

	tests := []struct {
		name     string
		obstacle RectF
		touches  bool
	}{
		{"leading edge on the inset edge", NewRectF(92, 252, 26, 30), true},
		{"half a pixel short", NewRectF(92.5, 252, 26, 30), false},
		{"overlapping", NewRectF(80, 252, 26, 30), true},
		{"resting on the head", NewRectF(80, 198, 26, 30), true},
		{"above the actor", NewRectF(80, 100, 26, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actor.Touches(tt.obstacle); got != tt.touches {
				t.Errorf("Touches() = %v, want %v", got, tt.touches)
			}
			if got := tt.obstacle.Touches(actor); got != tt.touches {
				t.Errorf("reversed Touches() = %v, want %v", got, tt.touches)
			}
		})
	}
}
