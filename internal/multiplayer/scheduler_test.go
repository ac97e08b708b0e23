package multiplayer

import "testing"

func TestSchedulerRunsWhenDue(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(3, func() { fired++ })

	s.Advance(1)
	s.Advance(1)
	if fired != 0 {
		t.Fatal("fired early")
	}
	s.Advance(1)
	if fired != 1 {
		t.Fatalf("fired = %d, want 1", fired)
	}
	s.Advance(10)
	if fired != 1 {
		t.Error("continuation must run once")
	}
}

func TestSchedulerCancelMakesStaleNoop(t *testing.T) {
	s := NewScheduler()
	stale := 0
	gen := s.After(2, func() { stale++ })

	s.Cancel()
	if s.Generation() == gen {
		t.Fatal("Cancel should bump the generation")
	}
	fresh := 0
	s.After(2, func() { fresh++ })

	s.Advance(5)
	if stale != 0 {
		t.Error("stale continuation ran")
	}
	if fresh != 1 {
		t.Error("fresh continuation did not run")
	}
	if s.Pending() != 0 {
		t.Errorf("pending = %d, want 0", s.Pending())
	}
}

func TestSchedulerCancelDuringAdvance(t *testing.T) {
	s := NewScheduler()
	second := false
	s.After(1, func() { s.Cancel() })
	s.After(1, func() { second = true })

	s.Advance(1)
	if second {
		t.Error("continuation invalidated mid-advance should not run")
	}
}

func TestSchedulerChain(t *testing.T) {
	s := NewScheduler()
	var order []int
	n := 0
	var step func()
	step = func() {
		n++
		order = append(order, n)
		if n < 3 {
			s.After(2, step)
		}
	}
	s.After(2, step)

	for i := 0; i < 10; i++ {
		s.Advance(1)
	}
	if len(order) != 3 {
		t.Errorf("chain ran %d steps, want 3", len(order))
	}
}

func TestSchedulerLargeDT(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.After(2, func() { fired++ })
	s.After(2.5, func() { fired++ })

	s.Advance(3)
	if fired != 2 {
		t.Errorf("fired = %d, want both", fired)
	}
}
