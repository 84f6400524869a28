package choreo

import (
	"math"
	"time"
)

// Scrolling and navigation constants, in CSS pixels.
const (
	DefaultNavHeight   = 80.0
	ScrollPadding      = 20.0
	SectionProbe       = 100.0
	ScrollTopThreshold = 300.0
	ScrollDuration     = 800 * time.Millisecond
)

// EaseOutCubic maps t in [0,1] to 1-(1-t)^3. Values outside the range are
// clamped.
func EaseOutCubic(t float64) float64 {
	if !(t > 0) {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 3)
}

// ScrollPosition returns the eased position of a scroll from start to
// target after elapsed. A non-positive duration jumps straight there.
func ScrollPosition(start, target float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return target
	}
	t := float64(elapsed) / float64(duration)
	return start + (target-start)*EaseOutCubic(t)
}

// ScrollTarget returns where to scroll so a section starting at sectionTop
// sits just below the navigation bar. A non-positive navHeight means the
// bar could not be measured.
func ScrollTarget(sectionTop, navHeight float64) float64 {
	if !(navHeight > 0) {
		navHeight = DefaultNavHeight
	}
	return sectionTop - navHeight - ScrollPadding
}

// Section is a page section as measured by the host.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// ActiveSection returns the id of the section under the probe line just
// below the top of the viewport, or "" when none is. Later sections win
// when they overlap.
func ActiveSection(sections []Section, scrollY float64) string {
	probe := scrollY + SectionProbe
	active := ""
	for _, s := range sections {
		if probe >= s.Top && probe < s.Top+s.Height {
			active = s.ID
		}
	}
	return active
}

// ShowScrollTop reports whether the back-to-top control should be visible.
func ShowScrollTop(scrollY float64) bool {
	return scrollY > ScrollTopThreshold
}
