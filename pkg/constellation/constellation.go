// Package constellation animates the drifting particle field drawn behind
// the page: green dots that bounce off the viewport edges and link up when
// they come close.
package constellation

import (
	"math"
	"math/rand"
	"time"

	"github.com/ha1tch/skillnet/pkg/netdraw"
)

const (
	Count        = 70
	MaxSpeed     = 0.25 // per step, along each axis
	DotRadius    = 1.5
	LinkDistance = 120.0
	LinkWidth    = 1.0
	StepsPerSec  = 60
)

var (
	DotColor  = netdraw.MustColor("#39ff14")
	LinkColor = netdraw.RGBA(57, 255, 20, 0.13)
)

// Particle is one dot. Velocity is in units per step.
type Particle struct {
	X, Y   float64
	VX, VY float64
}

// Field is a set of particles inside a w x h box.
type Field struct {
	Width, Height float64
	Particles     []Particle

	carry time.Duration
}

// New returns a field of Count particles placed by a generator seeded
// with seed.
func New(width, height float64, seed int64) *Field {
	return NewN(Count, width, height, seed)
}

// NewN is New with a particle count.
func NewN(n int, width, height float64, seed int64) *Field {
	rng := rand.New(rand.NewSource(seed))
	f := &Field{Width: width, Height: height, Particles: make([]Particle, n)}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:  rng.Float64() * width,
			Y:  rng.Float64() * height,
			VX: (rng.Float64() - 0.5) * 2 * MaxSpeed,
			VY: (rng.Float64() - 0.5) * 2 * MaxSpeed,
		}
	}
	return f
}

// Step moves every particle once. A particle found outside the box after
// moving has the matching velocity component turned back inwards.
func (f *Field) Step() {
	for i := range f.Particles {
		p := &f.Particles[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 {
			p.VX = math.Abs(p.VX)
		} else if p.X > f.Width {
			p.VX = -math.Abs(p.VX)
		}
		if p.Y < 0 {
			p.VY = math.Abs(p.VY)
		} else if p.Y > f.Height {
			p.VY = -math.Abs(p.VY)
		}
	}
}

// Advance runs as many steps as fit in dt at StepsPerSec, carrying the
// remainder to the next call. It returns the number of steps taken.
func (f *Field) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	step := time.Second / StepsPerSec
	f.carry += dt
	n := int(f.carry / step)
	f.carry -= time.Duration(n) * step
	for i := 0; i < n; i++ {
		f.Step()
	}
	return n
}

// Resize changes the bounds. Particles keep their positions and find their
// way back in by bouncing.
func (f *Field) Resize(width, height float64) {
	f.Width, f.Height = width, height
}

// Links returns the index pairs closer than LinkDistance, i < j.
func (f *Field) Links() [][2]int {
	var out [][2]int
	for i := range f.Particles {
		for j := i + 1; j < len(f.Particles); j++ {
			if linked(f.Particles[i], f.Particles[j]) {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

func linked(p, q Particle) bool {
	return math.Hypot(p.X-q.X, p.Y-q.Y) < LinkDistance
}

// Draw paints the field onto s without clearing it.
func (f *Field) Draw(s netdraw.Surface) {
	for i, p := range f.Particles {
		s.FillCircle(p.X, p.Y, DotRadius, DotColor)
		for _, q := range f.Particles[i+1:] {
			if linked(p, q) {
				s.Line(p.X, p.Y, q.X, q.Y, LinkWidth, LinkColor)
			}
		}
	}
}
