package netview

import (
	"math"
	"testing"
	"time"

	"github.com/ha1tch/skillnet/pkg/netdraw"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

func mounted(t *testing.T, opts Options) (*Controller, *netdraw.Recorder) {
	t.Helper()
	rec := netdraw.NewRecorder(1, 1, 1)
	c := New(skillnet.DefaultGraph(), rec, opts)
	c.Mount(550, 550, 1)
	return c, rec
}

func TestMountDraws(t *testing.T) {
	c, rec := mounted(t, Options{})
	if c.Redraws() != 1 {
		t.Errorf("Expected 1 redraw after mount, got %d", c.Redraws())
	}
	if w, h := rec.Size(); w != 550 || h != 550 {
		t.Errorf("surface size %gx%g", w, h)
	}
	if rec.Count("clear") != 1 || rec.Count("fill") != 21 {
		t.Errorf("unexpected first frame:\n%s", rec.Dump())
	}
}

func TestResizeBelowMinimum(t *testing.T) {
	c, rec := mounted(t, Options{})
	c.Resize(200, 200, 1)
	if w, h := rec.Size(); w != skillnet.MinCanvasSize || h != skillnet.MinCanvasSize {
		t.Errorf("surface %gx%g, want %gx%g", w, h, skillnet.MinCanvasSize, skillnet.MinCanvasSize)
	}
	if l := c.Layout(); l.Width != skillnet.MinCanvasSize || !closeTo(l.Scale, 300.0/550) {
		t.Errorf("layout %gx%g scale %g", l.Width, l.Height, l.Scale)
	}

	free, frec := mounted(t, Options{AnySize: true})
	free.Resize(200, 200, 1)
	if w, _ := frec.Size(); w != 200 || !closeTo(free.Layout().Scale, 200.0/550) {
		t.Errorf("AnySize: surface width %g scale %g", w, free.Layout().Scale)
	}
}

func TestInputIgnoredBeforeMount(t *testing.T) {
	rec := netdraw.NewRecorder(550, 550, 1)
	c := New(skillnet.DefaultGraph(), rec, Options{})
	c.Click(275, 215)
	c.PointerMove(275, 215)
	if c.State().Active() != "" || c.Redraws() != 0 {
		t.Error("unmounted controller reacted to input")
	}
}

func TestClickCenterToggles(t *testing.T) {
	c, _ := mounted(t, Options{})

	c.Click(275, 215)
	if c.State().Selected() != skillnet.CenterID || c.State().Progress() != 1 {
		t.Fatalf("after first click: %s", c.State())
	}
	if sc := c.Scene(); sc.Active != skillnet.CenterID || !sc.Selected || sc.Progress != 1 {
		t.Errorf("scene after click %+v", sc)
	}

	c.Click(275, 215)
	if c.State().Selected() != "" || c.State().Progress() != 0 {
		t.Errorf("after second click: %s", c.State())
	}
	if c.Redraws() != 3 {
		t.Errorf("Expected 3 redraws, got %d", c.Redraws())
	}
}

func TestClickOutsideEveryNode(t *testing.T) {
	c, _ := mounted(t, Options{})
	// 5 units past the center's tolerance, straight down.
	c.Click(275, 215+38+8+5)
	if c.State().Active() != "" {
		t.Errorf("click outside selected %q", c.State().Active())
	}
	if c.Redraws() != 1 {
		t.Errorf("no-op click redrew: %d", c.Redraws())
	}
}

func TestHoverHighlightsNeighbours(t *testing.T) {
	c, rec := mounted(t, Options{})
	aws, _ := c.Layout().Node("aws")
	c.PointerMove(aws.X, aws.Y)

	n := 0
	for _, o := range rec.Ops() {
		if o.Kind == "line" && o.Color == netdraw.EdgeHighlight {
			n++
		}
	}
	if want := c.Graph().Degree("aws"); n != want {
		t.Errorf("%d highlighted edges, want %d", n, want)
	}

	c.PointerLeave()
	if c.State().Active() != "" || rec.Count("glow") != 0 {
		t.Error("leave should clear the highlight")
	}
}

func TestResizeKeepsSelection(t *testing.T) {
	c, rec := mounted(t, Options{})
	c.Click(275, 215)

	c.Resize(300, 300, 1)
	if c.State().Selected() != skillnet.CenterID {
		t.Errorf("selection lost on resize: %s", c.State())
	}
	if !closeTo(c.Layout().Scale, 300.0/550) {
		t.Errorf("scale after resize %g", c.Layout().Scale)
	}
	center, _ := c.Layout().Node(skillnet.CenterID)
	if !closeTo(center.Size, 38*300.0/550) {
		t.Errorf("center radius %g", center.Size)
	}
	if rec.Count("stroke") != 1 {
		t.Error("selected ring missing after resize")
	}

	// The scaled center still toggles.
	c.Click(center.X, center.Y)
	if c.State().Selected() != "" {
		t.Errorf("click on resized center did not deselect: %s", c.State())
	}
}

func TestResizeDPRDoesNotCompound(t *testing.T) {
	c, rec := mounted(t, Options{})
	before := rec.Resets()
	for i := 0; i < 4; i++ {
		c.Resize(550, 550, 2)
	}
	if rec.Transform() != 2 || c.DPR() != 2 {
		t.Errorf("transform %g after repeated resizes, want 2", rec.Transform())
	}
	if got := rec.Resets() - before; got != 4 {
		t.Errorf("Expected 4 resets, got %d", got)
	}
	c.Resize(550, 550, 0)
	if rec.Transform() != 1 {
		t.Errorf("invalid dpr should fall back to 1, got %g", rec.Transform())
	}
}

func TestResizeUnknownSizeUsesViewport(t *testing.T) {
	rec := netdraw.NewRecorder(1, 1, 1)
	c := New(skillnet.DefaultGraph(), rec, Options{Viewport: skillnet.Viewport{Width: 400, Height: 900}})
	c.Mount(0, 0, 1)
	if w, h := rec.Size(); w != 360 || h != 360 {
		t.Errorf("fallback surface %gx%g, want 360x360", w, h)
	}
}

func TestSetViewportAppliesOnResize(t *testing.T) {
	rec := netdraw.NewRecorder(1, 1, 1)
	c := New(skillnet.DefaultGraph(), rec, Options{Viewport: skillnet.Viewport{Width: 400, Height: 900}})
	c.Mount(0, 0, 1)

	c.SetViewport(skillnet.Viewport{Width: 1000, Height: 1000})
	if w, _ := rec.Size(); w != 360 {
		t.Errorf("surface resized before Resize: %g", w)
	}
	c.Resize(0, 0, 1)
	if w, h := rec.Size(); w != 550 || h != 550 {
		t.Errorf("fallback surface %gx%g, want 550x550", w, h)
	}
}

// reentrant asks for more redraws from inside the render pass.
type reentrant struct {
	*netdraw.Recorder
	c     *Controller
	extra int
}

func (r *reentrant) Clear() {
	r.Recorder.Clear()
	for r.extra > 0 {
		r.extra--
		r.c.Redraw()
	}
}

func TestRedrawCoalesces(t *testing.T) {
	s := &reentrant{Recorder: netdraw.NewRecorder(1, 1, 1)}
	c := New(skillnet.DefaultGraph(), s, Options{})
	s.c = c
	c.Mount(550, 550, 1)

	s.extra = 3
	before := c.Redraws()
	c.Redraw()
	if got := c.Redraws() - before; got != 2 {
		t.Errorf("Expected 2 passes for 3 nested requests, got %d", got)
	}
}

func TestEasedHighlight(t *testing.T) {
	c, _ := mounted(t, Options{Ease: 300 * time.Millisecond})
	aws, _ := c.Layout().Node("aws")

	c.PointerMove(aws.X, aws.Y)
	if c.State().Progress() != 1 {
		t.Fatalf("contract progress %g, want 1", c.State().Progress())
	}
	if c.DrawnProgress() != 0 || !c.Animating() {
		t.Fatalf("tween should start at 0, drawn %g", c.DrawnProgress())
	}

	if !c.Frame(150 * time.Millisecond) {
		t.Error("tween ended early")
	}
	if p := c.DrawnProgress(); !closeTo(p, 0.875) {
		t.Errorf("half-way drawn progress %g, want 0.875", p)
	}
	if c.Frame(200 * time.Millisecond) {
		t.Error("tween should be done")
	}
	if c.DrawnProgress() != 1 {
		t.Errorf("drawn progress %g, want 1", c.DrawnProgress())
	}

	c.PointerLeave()
	if c.Scene().Active != "aws" {
		t.Error("node should stay drawn while fading out")
	}
	c.Frame(300 * time.Millisecond)
	if c.Scene().Active != "" || c.DrawnProgress() != 0 {
		t.Errorf("after fade out: active %q drawn %g", c.Scene().Active, c.DrawnProgress())
	}
	if c.Frame(time.Millisecond) {
		t.Error("idle controller should not want frames")
	}
}

func TestSetGraphRetainsKnownIDs(t *testing.T) {
	c, _ := mounted(t, Options{})
	aws, _ := c.Layout().Node("aws")
	c.Click(aws.X, aws.Y)

	g := skillnet.DefaultGraph()
	c.SetGraph(g)
	if c.State().Selected() != "aws" {
		t.Errorf("selection lost on reload: %s", c.State())
	}

	small := skillnet.NewGraph("hub")
	small.AddNode(skillnet.NodeSpec{ID: "hub", Label: "Hub", Size: 30, Color: "#ffffff"})
	c.SetGraph(small)
	if c.State().Active() != "" || c.Scene().Active != "" {
		t.Errorf("selection should drop with its node: %s", c.State())
	}
	if len(c.Layout().Nodes) != 1 {
		t.Errorf("layout not recomputed: %d nodes", len(c.Layout().Nodes))
	}
}

func TestClose(t *testing.T) {
	c, _ := mounted(t, Options{})
	c.Click(275, 215)
	c.Close()
	n := c.Redraws()
	c.Click(275, 215)
	c.Resize(300, 300, 1)
	c.Redraw()
	if c.Redraws() != n {
		t.Error("closed controller kept drawing")
	}
	if c.State().Active() != "" {
		t.Error("close should reset state")
	}
	c.Close()
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
