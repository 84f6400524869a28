package netdraw

import (
	"strings"

	"github.com/ha1tch/skillnet/pkg/skillnet"
)

// Styling used by Render.
var (
	EdgeDim          = RGBA(255, 255, 255, 0.06)
	EdgeHighlight    = RGBA(57, 255, 20, 0.8)
	LabelColor       = RGBA(255, 255, 255, 0.9)
	LabelActiveColor = RGBA(255, 255, 255, 1)
	LabelShadow      = RGBA(0, 0, 0, 0.8)
	SelectionRing    = RGBA(255, 255, 255, 1)
	FallbackNode     = RGBA(128, 128, 128, 1)
)

// Geometry and typography used by Render, in logical pixels.
const (
	EdgeDimWidth       = 1.0
	EdgeHighlightWidth = 2.5
	NodeAlpha          = 0.7
	ActiveGrowth       = 0.4 // active radius = size * (1 + ActiveGrowth*p)
	GlowAlpha          = 0.4
	GlowSpread         = 10.0
	RingGap            = 3.0
	RingWidth          = 2.0
	LabelGap           = 12.0
	LineSpacing        = 15.0

	CenterFontSize       = 13.0
	CenterFontSizeActive = 16.0
	FontSize             = 10.0
	FontSizeActive       = 12.0
)

// Scene is everything Render needs for one frame.
type Scene struct {
	Graph    *skillnet.Graph
	Layout   *skillnet.Layout
	Active   string  // active node id, "" for none
	Selected bool    // the active node is selected rather than hovered
	Progress float64 // drawn animation progress in [0,1]
}

// NewScene builds a scene from the interaction state. progress is the
// drawn progress, which may lag the state's own value when eased.
func NewScene(g *skillnet.Graph, l *skillnet.Layout, s *skillnet.Interaction, progress float64) Scene {
	return Scene{
		Graph:    g,
		Layout:   l,
		Active:   s.Active(),
		Selected: s.Selected() != "",
		Progress: progress,
	}
}

// Highlighted reports whether edge e is drawn highlighted: it joins the
// active node to one of its neighbours. Since every edge touching the
// active node does that, this is the set of edges incident to it.
func (sc Scene) Highlighted(e skillnet.Edge, neighbors map[string]bool) bool {
	if sc.Active == "" || sc.Progress <= 0 {
		return false
	}
	return (e.From == sc.Active && neighbors[e.To]) || (e.To == sc.Active && neighbors[e.From])
}

// Render clears s and draws the full scene: edges, then each node with its
// glow, ring and label. Rendering the same scene twice produces the same
// output.
func Render(s Surface, sc Scene) {
	s.Clear()
	if sc.Graph == nil || sc.Layout == nil {
		return
	}

	p := clamp01(sc.Progress)
	sc.Progress = p

	var neighbors map[string]bool
	if sc.Active != "" {
		neighbors = sc.Graph.NeighborsOf(sc.Active)
	}

	for _, e := range sc.Graph.Edges() {
		from, ok := sc.Layout.Node(e.From)
		if !ok {
			continue
		}
		to, ok := sc.Layout.Node(e.To)
		if !ok {
			continue
		}
		if sc.Highlighted(e, neighbors) {
			s.Line(from.X, from.Y, to.X, to.Y, EdgeHighlightWidth, EdgeHighlight)
		} else {
			s.Line(from.X, from.Y, to.X, to.Y, EdgeDimWidth, EdgeDim)
		}
	}

	center := sc.Graph.Center()
	for _, n := range sc.Layout.Nodes {
		active := n.ID == sc.Active && p > 0
		drawNode(s, n, active, active && sc.Selected, n.ID == center, p)
	}
}

func drawNode(s Surface, n skillnet.Node, active, selected, isCenter bool, p float64) {
	fill, err := ParseColor(n.Color)
	if err != nil {
		fill = FallbackNode
	}

	r := n.Size
	if active {
		r = n.Size * (1 + ActiveGrowth*p)
		s.Glow(n.X, n.Y, r, r+GlowSpread, WithAlpha(fill, GlowAlpha*p))
	}

	s.FillCircle(n.X, n.Y, r, WithAlpha(fill, NodeAlpha))

	if selected {
		s.StrokeCircle(n.X, n.Y, r+RingGap, RingWidth, SelectionRing)
	}

	st := TextStyle{
		Size:   FontSize,
		Bold:   isCenter,
		Color:  LabelColor,
		Shadow: LabelShadow,
	}
	if isCenter {
		st.Size = CenterFontSize
	}
	if active {
		st.Color = LabelActiveColor
		if isCenter {
			st.Size = lerp(CenterFontSize, CenterFontSizeActive, p)
		} else {
			st.Size = lerp(FontSize, FontSizeActive, p)
		}
	}

	top := n.Y + r + LabelGap
	for i, line := range LabelLines(n.Label) {
		s.Text(n.X, top+float64(i)*LineSpacing, line, st)
	}
}

// LabelLines returns the lines of a node label.
func LabelLines(label string) []string {
	return strings.Split(label, "\n")
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
