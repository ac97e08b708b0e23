package input

import (
	"testing"

	"github.com/vovakirdan/erika-arcade/internal/core"
)

func TestPrimaryIsEdgeTriggered(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.Press(" ")

	in := r.Frame(core.Player1, GateRunning)
	if !in.Has(core.ActionPrimary) {
		t.Fatal("first frame should carry the press")
	}
	in = r.Frame(core.Player1, GateRunning)
	if in.Has(core.ActionPrimary) {
		t.Error("press must not repeat on the next frame")
	}
}

func TestHoldLatchExpires(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.Press("s")

	for i := 0; i < HoldFrames; i++ {
		if !r.Frame(core.Player1, GateRunning).IsHeld(core.ActionCrouch) {
			t.Fatalf("frame %d: crouch should still be held", i)
		}
	}
	if r.Frame(core.Player1, GateRunning).IsHeld(core.ActionCrouch) {
		t.Error("latch should expire after HoldFrames without a repeat")
	}
}

func TestHoldLatchRefreshedByRepeat(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.Press("s")
	for i := 0; i < HoldFrames-1; i++ {
		r.Frame(core.Player1, GateRunning)
	}
	r.Press("s")
	for i := 0; i < HoldFrames; i++ {
		if !r.Frame(core.Player1, GateRunning).IsHeld(core.ActionCrouch) {
			t.Fatalf("frame %d after repeat: crouch dropped", i)
		}
	}
}

func TestKeyUpsHoldUntilRelease(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.SetKeyUps(true)
	r.Press("down")

	for i := 0; i < HoldFrames*3; i++ {
		if !r.Frame(core.Player1, GateRunning).IsHeld(core.ActionCrouch) {
			t.Fatalf("frame %d: hold dropped before release", i)
		}
	}
	r.Release("down")
	if r.Frame(core.Player1, GateRunning).IsHeld(core.ActionCrouch) {
		t.Error("hold should end on release")
	}
}

func TestKeyUpsIgnoreRepeatDown(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.SetKeyUps(true)
	r.Press("s")
	r.Frame(core.Player1, GateRunning)

	r.Press("s")
	if r.Frame(core.Player1, GateRunning).Has(core.ActionCrouch) {
		t.Error("repeat keydown should not produce a new edge")
	}
}

func TestGates(t *testing.T) {
	tests := []struct {
		name   string
		gate   Gate
		key    string
		action core.Action
		want   bool
	}{
		{"running primary", GateRunning, " ", core.ActionPrimary, true},
		{"countdown drops primary", GateCountdown, " ", core.ActionPrimary, false},
		{"countdown keeps pause", GateCountdown, "p", core.ActionPause, true},
		{"paused drops primary", GatePaused, " ", core.ActionPrimary, false},
		{"paused keeps back", GatePaused, "b", core.ActionBack, true},
		{"menu keeps up", GateMenu, "up", core.ActionUp, true},
		{"menu drops pause", GateMenu, "p", core.ActionPause, false},
		{"results keeps restart", GateResults, "r", core.ActionRestart, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(SoloKeymap())
			r.Press(tt.key)
			if got := r.Frame(core.Player1, tt.gate).Has(tt.action); got != tt.want {
				t.Errorf("Has(%v) = %v, want %v", tt.action, got, tt.want)
			}
		})
	}
}

func TestGatedPressIsConsumed(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.Press(" ")
	r.Frame(core.Player1, GateCountdown)

	if r.Frame(core.Player1, GateRunning).Has(core.ActionPrimary) {
		t.Error("press made during the countdown must not fire once running")
	}
}

func TestRaceSplitsPlayers(t *testing.T) {
	r := NewRouter(RaceKeymap())
	r.Press("w")
	r.Press("down")

	p1 := r.Frame(core.Player1, GateRunning)
	p2 := r.Frame(core.Player2, GateRunning)

	if !p1.Has(core.ActionPrimary) || p1.IsHeld(core.ActionCrouch) {
		t.Errorf("player 1 frame = %+v", p1)
	}
	if p2.Has(core.ActionPrimary) || !p2.IsHeld(core.ActionCrouch) {
		t.Errorf("player 2 frame = %+v", p2)
	}
}

func TestBlockKeymap(t *testing.T) {
	r := NewRouter(KeymapFor("block", false))
	for _, k := range []string{"left", "tab", "2", " "} {
		if !r.Press(k) {
			t.Fatalf("key %q should be bound", k)
		}
	}
	in := r.Frame(core.Player1, GateRunning)
	for _, a := range []core.Action{core.ActionLeft, core.ActionCycle, core.ActionSlot2, core.ActionPrimary} {
		if !in.Has(a) {
			t.Errorf("missing %v", a)
		}
	}
}

func TestUnboundKey(t *testing.T) {
	r := NewRouter(SoloKeymap())
	if r.Press("x") {
		t.Error("x should be unbound")
	}
}

func TestReset(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.Press(" ")
	r.Press("s")
	r.Reset()

	in := r.Frame(core.Player1, GateRunning)
	if in.Has(core.ActionPrimary) || in.IsHeld(core.ActionCrouch) {
		t.Error("Reset should drop pending input")
	}
}

func TestKeyUpsRepeatIsOneImpulse(t *testing.T) {
	r := NewRouter(SoloKeymap())
	r.SetKeyUps(true)

	edges := 0
	for i := 0; i < 6; i++ {
		r.Press(" ")
		if r.Frame(core.Player1, GateRunning).Has(core.ActionPrimary) {
			edges++
		}
	}
	r.Release(" ")
	if edges != 1 {
		t.Errorf("held key produced %d primary edges, want 1", edges)
	}

	r.Press(" ")
	if !r.Frame(core.Player1, GateRunning).Has(core.ActionPrimary) {
		t.Error("press after release should fire again")
	}
}
