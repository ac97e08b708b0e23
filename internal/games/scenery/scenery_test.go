package scenery

import (
	"testing"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

func TestCloudsRecycle(t *testing.T) {
	vp := core.Viewport{W: 500, H: 300}
	c := NewClouds(4, vp, core.NewRand(1), 0.12, 0.30)

	for i := 0; i < 5000; i++ {
		c.Update(6, 1, vp)
		for _, cl := range c.Items() {
			if cl.X+cl.Size < 0 {
				t.Fatalf("tick %d: cloud left the canvas without recycling: %+v", i, cl)
			}
			if cl.Y < 20 || cl.Y > 100 {
				t.Fatalf("cloud y out of band: %v", cl.Y)
			}
		}
	}
	if len(c.Items()) != 4 {
		t.Errorf("cloud count changed: %d", len(c.Items()))
	}
}

func TestStarfieldWraps(t *testing.T) {
	vp := core.Viewport{W: 500, H: 300}
	s := NewStarfield(40, 5, vp, core.NewRand(7))

	if len(s.Stars()) != 40 {
		t.Fatalf("expected 40 stars, got %d", len(s.Stars()))
	}
	if len(s.Planets()) == 0 {
		t.Fatal("expected planets")
	}

	for i := 0; i < 3000; i++ {
		s.Update(10, 1, vp)
	}
	for _, st := range s.Stars() {
		if st.X < -2 {
			t.Errorf("star not wrapped: %+v", st)
		}
	}
	for _, p := range s.Planets() {
		if p.X+p.Size/2 < 0 {
			t.Errorf("planet not respawned: %+v", p)
		}
	}
}

func TestRenderWithoutSprites(t *testing.T) {
	vp := core.Viewport{W: 500, H: 300}
	dst := core.NewScreen(100, 30)
	proj := core.NewProjection(vp, 100, 30)

	c := NewClouds(4, vp, core.NewRand(3), 0.12, 0.30)
	c.Render(dst, proj, nil)

	found := false
	for y := 0; y < dst.Height() && !found; y++ {
		for x := 0; x < dst.Width(); x++ {
			if dst.GetCell(x, y).Color == core.ColorGray {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("expected flat gray fallback for clouds")
	}
}
