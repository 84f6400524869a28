// Package choreo holds the timing rules of the page around the network:
// the boot overlay, the typed title, smooth scrolling and section tracking.
// Everything here is pure; hosts drive it with their own clocks.
package choreo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Boot overlay timings.
const (
	DefaultBootDelay    = 2600 * time.Millisecond
	DefaultBootDuration = 500 * time.Millisecond
	ReadPause           = 500 * time.Millisecond  // after the welcome line finishes
	BootFallback        = 4100 * time.Millisecond // no welcome line to time against
	MaxBootWait         = 8 * time.Second         // overlay never outlives this
	FadeDuration        = 600 * time.Millisecond
	TypingStart         = 800 * time.Millisecond // after the overlay is removed
)

// Typing cadence.
const (
	TypingPause = 150 * time.Millisecond // after a space or a full stop
	TypingStep  = 100 * time.Millisecond
)

// Boot is the schedule of the boot overlay, measured from page start.
type Boot struct {
	Trigger time.Duration // the welcome line has been read
	Fade    time.Duration // overlay starts fading out
	Removed time.Duration // overlay is gone and the page is interactive
	Typing  time.Duration // the typed title starts
}

// BootSchedule computes the schedule from the welcome line's CSS animation
// delay and duration. Values that do not parse, or parse to zero, fall
// back to the defaults.
func BootSchedule(delay, duration string) Boot {
	d, err := ParseCSSTime(delay)
	if err != nil || d <= 0 {
		d = DefaultBootDelay
	}
	n, err := ParseCSSTime(duration)
	if err != nil || n <= 0 {
		n = DefaultBootDuration
	}
	trigger := d + n + ReadPause
	if trigger > MaxBootWait {
		trigger = MaxBootWait
	}
	return scheduleFrom(trigger)
}

// FallbackSchedule is used when there is no welcome line.
func FallbackSchedule() Boot {
	return scheduleFrom(BootFallback)
}

func scheduleFrom(trigger time.Duration) Boot {
	b := Boot{Trigger: trigger}
	b.Fade = b.Trigger + ReadPause
	b.Removed = b.Fade + FadeDuration
	b.Typing = b.Removed + TypingStart
	return b
}

// Opacity returns the overlay opacity at time t.
func (b Boot) Opacity(t time.Duration) float64 {
	switch {
	case t <= b.Fade:
		return 1
	case t >= b.Removed:
		return 0
	}
	return 1 - float64(t-b.Fade)/float64(b.Removed-b.Fade)
}

// Visible reports whether the overlay is still on screen at time t.
func (b Boot) Visible(t time.Duration) bool {
	return t < b.Removed
}

// ParseCSSTime parses a CSS <time> value such as "2.6s" or "300ms". A bare
// number is taken as seconds.
func ParseCSSTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty time value")
	}
	// Computed styles may list several values; the first one applies.
	if i := strings.IndexByte(s, ','); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	unit := time.Second
	switch {
	case strings.HasSuffix(s, "ms"):
		unit = time.Millisecond
		s = strings.TrimSuffix(s, "ms")
	case strings.HasSuffix(s, "s"):
		s = strings.TrimSuffix(s, "s")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid time value %q: %w", s, err)
	}
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid time value %q", s)
	}
	return time.Duration(v * float64(unit)), nil
}
