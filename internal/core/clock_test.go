package core

import (
	"testing"
	"time"
)

func TestDT(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"nominal frame", FrameDuration, 1.0},
		{"half frame", FrameDuration / 2, 0.5},
		{"zero", 0, 0},
		{"negative", -time.Second, 0},
		{"tab suspended", 10 * time.Second, MaxDT},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DT(tc.elapsed); got != tc.expected {
				t.Errorf("DT(%v) = %f, expected %f", tc.elapsed, got, tc.expected)
			}
		})
	}
}

func TestClockTick(t *testing.T) {
	c := NewClock()
	start := time.Unix(0, 0)

	if dt := c.Tick(start); dt != 1.0 {
		t.Errorf("first tick dt = %f, expected 1.0", dt)
	}
	if dt := c.Tick(start.Add(2 * FrameDuration)); dt != 2.0 {
		t.Errorf("second tick dt = %f, expected 2.0", dt)
	}
	if dt := c.Tick(start.Add(time.Hour)); dt != MaxDT {
		t.Errorf("long gap dt = %f, expected cap %f", dt, MaxDT)
	}

	c.Reset()
	if dt := c.Tick(start.Add(2 * time.Hour)); dt != 1.0 {
		t.Errorf("tick after Reset dt = %f, expected 1.0", dt)
	}
}
