// Package netview binds the skills network to a host: it owns the graph,
// layout, interaction state and drawing surface, and turns pointer and
// resize input into redraws.
package netview

import (
	"log/slog"
	"time"

	"github.com/ha1tch/skillnet/pkg/choreo"
	"github.com/ha1tch/skillnet/pkg/netdraw"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

// Options configures a Controller.
type Options struct {
	// Viewport sizes the fallback canvas when a resize reports no size.
	Viewport skillnet.Viewport
	// Ease is the duration of the highlight tween. Zero draws state
	// changes immediately.
	Ease time.Duration
	// Logger receives state transitions at debug level. Nil discards.
	Logger *slog.Logger
	// AnySize lets Resize lay out canvases smaller than
	// skillnet.MinCanvasSize instead of growing them to it.
	AnySize bool
}

// Controller is the single owner of one network view. It is not safe for
// concurrent use; hosts call it from their event loop.
type Controller struct {
	graph   *skillnet.Graph
	layout  *skillnet.Layout
	state   *skillnet.Interaction
	surface netdraw.Surface
	opts    Options
	log     *slog.Logger

	dpr float64

	// Drawn highlight. shown lags the state's active id while fading out.
	shown   string
	drawn   float64
	from    float64
	target  float64
	elapsed time.Duration
	tween   bool

	drawing bool
	dirty   bool
	redraws int
	closed  bool
}

// New returns a controller drawing g onto s. Nothing is drawn until Mount.
func New(g *skillnet.Graph, s netdraw.Surface, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Controller{
		graph:   g,
		state:   skillnet.NewInteraction(),
		surface: s,
		opts:    opts,
		log:     log,
		dpr:     1,
	}
}

// Mount sizes the surface and draws the first frame.
func (c *Controller) Mount(width, height, dpr float64) {
	c.log.Debug("mount", "graph", c.graph.Name, "nodes", c.graph.Len())
	c.Resize(width, height, dpr)
}

// Resize is the one place the surface is resized: it resets the surface
// transform to dpr, recomputes the layout and redraws. Each dimension is
// at least skillnet.MinCanvasSize unless Options.AnySize is set. The
// interaction state refers to nodes by id and survives unchanged.
func (c *Controller) Resize(width, height, dpr float64) {
	if c.closed {
		return
	}
	if !(dpr > 0) {
		dpr = 1
	}
	width, height = skillnet.ResolveSize(width, height, c.opts.Viewport)
	if !c.opts.AnySize {
		width, height = skillnet.ClampSize(width, height)
	}
	c.dpr = dpr
	c.surface.Reset(width, height, dpr)
	c.layout = skillnet.ComputeLayoutIn(c.graph, width, height, c.opts.Viewport)
	c.log.Debug("resize", "width", width, "height", height, "dpr", dpr, "scale", c.layout.Scale)
	c.Redraw()
}

// SetViewport updates the window size used for the fallback canvas size.
// It takes effect on the next Resize.
func (c *Controller) SetViewport(vp skillnet.Viewport) {
	c.opts.Viewport = vp
}

// SetGraph swaps the graph, keeping the selection and hover when their
// nodes still exist.
func (c *Controller) SetGraph(g *skillnet.Graph) {
	if c.closed || g == nil {
		return
	}
	c.graph = g
	c.state.Retain(func(id string) bool {
		_, ok := g.Node(id)
		return ok
	})
	if _, ok := g.Node(c.shown); !ok {
		c.shown, c.drawn, c.tween = "", 0, false
	}
	c.sync()
	c.log.Debug("graph replaced", "graph", g.Name, "nodes", g.Len())
	if c.layout != nil {
		w, h := c.surface.Size()
		c.layout = skillnet.ComputeLayoutIn(g, w, h, c.opts.Viewport)
		c.Redraw()
	}
}

// PointerMove handles pointer motion at logical coordinates (x, y).
func (c *Controller) PointerMove(x, y float64) {
	if !c.ready() {
		return
	}
	if c.state.PointerMove(c.hit(x, y)) {
		c.changed("move")
	}
}

// PointerLeave handles the pointer leaving the surface.
func (c *Controller) PointerLeave() {
	if !c.ready() {
		return
	}
	if c.state.PointerLeave() {
		c.changed("leave")
	}
}

// Click handles a click at logical coordinates (x, y).
func (c *Controller) Click(x, y float64) {
	if !c.ready() {
		return
	}
	if c.state.Click(c.hit(x, y)) {
		c.changed("click")
	}
}

// Frame advances the highlight tween by dt and redraws if it moved. It
// reports whether another frame is wanted.
func (c *Controller) Frame(dt time.Duration) bool {
	if !c.ready() || !c.tween {
		return false
	}
	c.elapsed += dt
	t := 1.0
	if c.opts.Ease > 0 {
		t = float64(c.elapsed) / float64(c.opts.Ease)
	}
	if t >= 1 {
		c.finishTween()
	} else {
		c.drawn = c.from + (c.target-c.from)*choreo.EaseOutCubic(t)
	}
	c.Redraw()
	return c.tween
}

// Animating reports whether the highlight tween is still running.
func (c *Controller) Animating() bool { return c.tween }

// Redraw renders the current scene. A redraw requested while one is in
// progress is folded into a single follow-up pass.
func (c *Controller) Redraw() {
	if c.closed || c.layout == nil {
		return
	}
	if c.drawing {
		c.dirty = true
		return
	}
	c.drawing = true
	defer func() { c.drawing = false }()
	for {
		c.dirty = false
		netdraw.Render(c.surface, c.Scene())
		c.redraws++
		if !c.dirty {
			return
		}
	}
}

// Close detaches the controller. Later input is ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.state.Reset()
	c.shown, c.drawn, c.tween = "", 0, false
	c.log.Debug("closed")
}

// Scene returns what the next redraw will draw.
func (c *Controller) Scene() netdraw.Scene {
	return netdraw.Scene{
		Graph:    c.graph,
		Layout:   c.layout,
		Active:   c.shown,
		Selected: c.shown != "" && c.shown == c.state.Selected(),
		Progress: c.drawn,
	}
}

// Graph returns the graph being shown.
func (c *Controller) Graph() *skillnet.Graph { return c.graph }

// Layout returns the current layout, nil before Mount.
func (c *Controller) Layout() *skillnet.Layout { return c.layout }

// Surface returns the surface the controller draws on.
func (c *Controller) Surface() netdraw.Surface { return c.surface }

// State returns the interaction state. Callers must not mutate it.
func (c *Controller) State() *skillnet.Interaction { return c.state }

// DrawnProgress is the highlight progress as currently drawn.
func (c *Controller) DrawnProgress() float64 { return c.drawn }

// Redraws counts completed render passes.
func (c *Controller) Redraws() int { return c.redraws }

// DPR returns the device pixel ratio applied by the last Resize.
func (c *Controller) DPR() float64 { return c.dpr }

func (c *Controller) ready() bool {
	return !c.closed && c.layout != nil
}

func (c *Controller) hit(x, y float64) string {
	if n, ok := c.layout.HitTest(x, y); ok {
		return n.ID
	}
	return ""
}

func (c *Controller) changed(event string) {
	c.log.Debug(event,
		"phase", c.state.Phase(),
		"hovered", c.state.Hovered(),
		"selected", c.state.Selected())
	c.sync()
	c.Redraw()
}

// sync points the drawn highlight at the state after a change.
func (c *Controller) sync() {
	active := c.state.Active()
	if c.opts.Ease <= 0 {
		c.shown = active
		c.drawn = c.state.Progress()
		c.tween = false
		return
	}

	switch {
	case active == "" && c.shown == "":
		return
	case active == "":
		c.startTween(c.drawn, 0)
	case active != c.shown:
		c.shown = active
		c.startTween(0, 1)
	default:
		c.startTween(c.drawn, 1)
	}
}

func (c *Controller) startTween(from, to float64) {
	c.from, c.target = from, to
	c.drawn = from
	c.elapsed = 0
	c.tween = from != to
	if !c.tween {
		c.finishTween()
	}
}

func (c *Controller) finishTween() {
	c.drawn = c.target
	c.tween = false
	if c.target == 0 {
		c.shown = ""
	}
}
