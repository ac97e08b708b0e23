package multiplayer

// Scheduler runs delayed continuations on the gameplay frame clock.
//
// Every continuation captures the generation current when it was scheduled.
// Cancel bumps the generation, so continuations scheduled before it become
// silent no-ops. There is no other timing source.
type Scheduler struct {
	now   float64
	gen   uint64
	tasks []task
}

type task struct {
	at  float64
	gen uint64
	fn  func()
}

// NewScheduler creates an idle scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After runs fn once delay frames of dt have elapsed.
// Returns the generation fn is bound to.
func (s *Scheduler) After(delay float64, fn func()) uint64 {
	s.tasks = append(s.tasks, task{at: s.now + delay, gen: s.gen, fn: fn})
	return s.gen
}

// Cancel invalidates every pending continuation.
func (s *Scheduler) Cancel() {
	s.gen++
}

// Generation returns the live token.
func (s *Scheduler) Generation() uint64 {
	return s.gen
}

// Pending returns the number of live continuations.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.gen == s.gen {
			n++
		}
	}
	return n
}

// Advance moves the clock by dt and runs every due continuation in schedule
// order. Continuations scheduled while advancing run on a later Advance
// unless they are already due.
func (s *Scheduler) Advance(dt float64) {
	s.now += dt

	due := s.tasks[:0:0]
	keep := s.tasks[:0]
	for _, t := range s.tasks {
		switch {
		case t.gen != s.gen:
			// stale, dropped
		case t.at <= s.now:
			due = append(due, t)
		default:
			keep = append(keep, t)
		}
	}
	s.tasks = keep

	for _, t := range due {
		if t.gen != s.gen {
			continue
		}
		t.fn()
	}
}
