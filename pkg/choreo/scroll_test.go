package choreo

import (
	"math"
	"testing"
	"time"
)

func TestEaseOutCubic(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0},
		{0, 0},
		{0.5, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseOutCubic(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("EaseOutCubic(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
	prev := 0.0
	for i := 1; i <= 100; i++ {
		v := EaseOutCubic(float64(i) / 100)
		if v < prev {
			t.Fatalf("not monotonic at %d", i)
		}
		prev = v
	}
}

func TestScrollPosition(t *testing.T) {
	if got := ScrollPosition(0, 800, 0, ScrollDuration); got != 0 {
		t.Errorf("start = %g", got)
	}
	if got := ScrollPosition(0, 800, ScrollDuration/2, ScrollDuration); math.Abs(got-700) > 1e-9 {
		t.Errorf("half-way = %g, want 700", got)
	}
	if got := ScrollPosition(1000, 200, 2*ScrollDuration, ScrollDuration); got != 200 {
		t.Errorf("overshoot = %g", got)
	}
	if got := ScrollPosition(0, 50, time.Millisecond, 0); got != 50 {
		t.Errorf("zero duration = %g", got)
	}
}

func TestScrollTarget(t *testing.T) {
	if got := ScrollTarget(1000, 64); got != 916 {
		t.Errorf("ScrollTarget = %g, want 916", got)
	}
	if got := ScrollTarget(1000, 0); got != 900 {
		t.Errorf("unmeasured nav ScrollTarget = %g, want 900", got)
	}
}

func TestActiveSection(t *testing.T) {
	sections := []Section{
		{ID: "home", Top: 0, Height: 700},
		{ID: "about", Top: 700, Height: 500},
		{ID: "skills", Top: 1200, Height: 800},
	}
	tests := []struct {
		y    float64
		want string
	}{
		{0, "home"},
		{599, "home"},
		{600, "about"},
		{1100, "skills"},
		{1900, ""},
	}
	for _, tt := range tests {
		if got := ActiveSection(sections, tt.y); got != tt.want {
			t.Errorf("ActiveSection(%g) = %q, want %q", tt.y, got, tt.want)
		}
	}
}

func TestShowScrollTop(t *testing.T) {
	if ShowScrollTop(300) || !ShowScrollTop(301) {
		t.Error("threshold should be strictly above 300")
	}
}
