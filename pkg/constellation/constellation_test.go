package constellation

import (
	"testing"
	"time"

	"github.com/ha1tch/skillnet/pkg/netdraw"
)

func TestNewField(t *testing.T) {
	f := New(800, 600, 1)
	if len(f.Particles) != Count {
		t.Fatalf("Expected %d particles, got %d", Count, len(f.Particles))
	}
	for i, p := range f.Particles {
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Errorf("particle %d starts outside: (%g, %g)", i, p.X, p.Y)
		}
		if p.VX < -MaxSpeed || p.VX >= MaxSpeed || p.VY < -MaxSpeed || p.VY >= MaxSpeed {
			t.Errorf("particle %d velocity (%g, %g) out of range", i, p.VX, p.VY)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a, b := New(500, 500, 42), New(500, 500, 42)
	for i := 0; i < 100; i++ {
		a.Step()
		b.Step()
	}
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d diverged", i)
		}
	}
}

func TestBounce(t *testing.T) {
	f := &Field{Width: 10, Height: 10, Particles: []Particle{
		{X: 9.9, Y: 5, VX: 0.2, VY: 0},
		{X: 5, Y: 0.1, VX: 0, VY: -0.2},
	}}
	f.Step()
	if f.Particles[0].VX != -0.2 {
		t.Errorf("right edge: vx = %g, want -0.2", f.Particles[0].VX)
	}
	if f.Particles[1].VY != 0.2 {
		t.Errorf("top edge: vy = %g, want 0.2", f.Particles[1].VY)
	}
	f.Step()
	if f.Particles[0].X > 10 || f.Particles[1].Y < 0 {
		t.Errorf("particles did not come back: %+v", f.Particles)
	}
}

func TestStaysNearBounds(t *testing.T) {
	f := New(300, 200, 3)
	for i := 0; i < 5000; i++ {
		f.Step()
	}
	for i, p := range f.Particles {
		if p.X < -MaxSpeed || p.X > 300+MaxSpeed || p.Y < -MaxSpeed || p.Y > 200+MaxSpeed {
			t.Errorf("particle %d escaped to (%g, %g)", i, p.X, p.Y)
		}
	}
}

func TestAdvance(t *testing.T) {
	f := NewN(1, 100, 100, 1)
	if n := f.Advance(time.Second); n != StepsPerSec {
		t.Errorf("Expected %d steps, got %d", StepsPerSec, n)
	}
	step := time.Second / StepsPerSec
	if n := f.Advance(step / 2); n != 0 {
		t.Errorf("half a step advanced %d", n)
	}
	if n := f.Advance(step / 2); n != 1 {
		t.Errorf("carried remainder should complete a step, got %d", n)
	}
	if n := f.Advance(-time.Second); n != 0 {
		t.Errorf("negative dt advanced %d", n)
	}
}

func TestLinks(t *testing.T) {
	f := &Field{Width: 500, Height: 500, Particles: []Particle{
		{X: 0, Y: 0},
		{X: 119, Y: 0},
		{X: 0, Y: 120},
		{X: 400, Y: 400},
	}}
	links := f.Links()
	if len(links) != 1 || links[0] != [2]int{0, 1} {
		t.Errorf("links = %v, want [[0 1]]", links)
	}
}

func TestDraw(t *testing.T) {
	f := &Field{Width: 500, Height: 500, Particles: []Particle{
		{X: 10, Y: 10},
		{X: 50, Y: 10},
		{X: 300, Y: 300},
	}}
	rec := netdraw.NewRecorder(500, 500, 1)
	f.Draw(rec)
	if rec.Count("fill") != 3 || rec.Count("line") != 1 {
		t.Errorf("unexpected ops:\n%s", rec.Dump())
	}
	for _, o := range rec.Ops() {
		if o.Kind == "line" && o.Color != LinkColor {
			t.Errorf("link colour %v", o.Color)
		}
		if o.Kind == "fill" && (o.Color != DotColor || o.Args[2] != DotRadius) {
			t.Errorf("dot %v", o)
		}
	}
}

func TestBackdropUnderNetwork(t *testing.T) {
	f := NewN(2, 100, 100, 9)
	rec := netdraw.NewRecorder(100, 100, 1)
	s := netdraw.WithBackdrop(rec, f.Draw)
	s.Clear()
	ops := rec.Ops()
	if len(ops) < 3 || ops[0].Kind != "clear" || ops[1].Kind != "fill" {
		t.Errorf("backdrop not drawn after clear:\n%s", rec.Dump())
	}
}

func TestResizeShrinkRecovers(t *testing.T) {
	f := &Field{Width: 100, Height: 100, Particles: []Particle{{X: 90, Y: 50, VX: 0.2, VY: 0}}}
	f.Resize(50, 100)
	for i := 0; i < 400; i++ {
		f.Step()
	}
	if p := f.Particles[0]; p.X > 50+MaxSpeed {
		t.Errorf("particle still outside after shrink: x = %g", p.X)
	}
}
