// Viewport-relative layout of the skills network.

package skillnet

import "math"

// Layout constants. Offsets and radii in a NodeSpec are authored for a
// square canvas of ReferenceSize logical units.
const (
	ReferenceSize = 550.0
	MaxScale      = 1.2   // caps upscaling on large viewports
	VerticalBias  = -60.0 // center sits above the geometric middle
	MinCanvasSize = 300.0
	ViewportInset = 40.0 // horizontal padding left around the canvas
	ViewportShare = 0.6  // max share of viewport height used by the canvas
)

// Point represents a 2D coordinate in logical pixels.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Node is a laid-out node. X, Y and Size are derived from the NodeSpec and the
// canvas size; everything else is copied from the NodeSpec.
type Node struct {
	ID       string
	Label    string
	X, Y     float64
	Size     float64 // scaled base radius
	Color    string
	Category string
}

// Center returns the node's center point.
func (n Node) Center() Point {
	return Point{n.X, n.Y}
}

// Viewport is the size of the window hosting the canvas. Zero fields are
// treated as unknown.
type Viewport struct {
	Width, Height float64
}

// FallbackSize returns the canvas side used when the canvas itself has no
// size yet: the reference size, shrunk to fit the viewport, never below
// MinCanvasSize.
func (v Viewport) FallbackSize() float64 {
	size := ReferenceSize
	if v.Width > 0 {
		size = math.Min(size, v.Width-ViewportInset)
	}
	if v.Height > 0 {
		size = math.Min(size, v.Height*ViewportShare)
	}
	return math.Max(MinCanvasSize, size)
}

// ResolveSize substitutes the viewport fallback for a zero or negative
// canvas dimension.
func ResolveSize(width, height float64, vp Viewport) (float64, float64) {
	if !(width > 0) {
		width = vp.FallbackSize()
	}
	if !(height > 0) {
		height = vp.FallbackSize()
	}
	return width, height
}

// ClampSize raises each dimension to at least MinCanvasSize.
func ClampSize(width, height float64) (float64, float64) {
	return math.Max(width, MinCanvasSize), math.Max(height, MinCanvasSize)
}

// Scale returns the uniform scale factor for a canvas of the given size.
func Scale(width, height float64) float64 {
	return math.Min(math.Min(width/ReferenceSize, height/ReferenceSize), MaxScale)
}

// Layout is the result of laying a graph out on a canvas.
type Layout struct {
	Width, Height float64
	Scale         float64
	Origin        Point // the center node's position
	Nodes         []Node
	index         map[string]int
}

// ComputeLayout lays g out on a width x height canvas. A zero dimension
// falls back to the reference size.
func ComputeLayout(g *Graph, width, height float64) *Layout {
	return ComputeLayoutIn(g, width, height, Viewport{})
}

// ComputeLayoutIn lays g out on a width x height canvas, using vp to pick a
// fallback size for zero dimensions. Every node is positioned from its
// authored offset and the single uniform scale, never from the raw canvas
// size, so relative spacing is identical at every size.
func ComputeLayoutIn(g *Graph, width, height float64, vp Viewport) *Layout {
	width, height = ResolveSize(width, height, vp)
	scale := Scale(width, height)

	origin := Point{
		X: width / 2,
		Y: height/2 + VerticalBias*scale,
	}

	specs := g.nodes
	l := &Layout{
		Width:  width,
		Height: height,
		Scale:  scale,
		Origin: origin,
		Nodes:  make([]Node, len(specs)),
		index:  make(map[string]int, len(specs)),
	}

	for i, s := range specs {
		l.Nodes[i] = Node{
			ID:       s.ID,
			Label:    s.Label,
			X:        origin.X + s.DX*scale,
			Y:        origin.Y + s.DY*scale,
			Size:     s.Size * scale,
			Color:    s.Color,
			Category: s.Category,
		}
		l.index[s.ID] = i
	}

	return l
}

// Node returns the laid-out node with the given id.
func (l *Layout) Node(id string) (Node, bool) {
	i, ok := l.index[id]
	if !ok {
		return Node{}, false
	}
	return l.Nodes[i], true
}

// Bounds returns the bounding box of all node circles.
func (l *Layout) Bounds() (minX, minY, maxX, maxY float64) {
	if len(l.Nodes) == 0 {
		return 0, 0, 0, 0
	}

	n := l.Nodes[0]
	minX, minY = n.X-n.Size, n.Y-n.Size
	maxX, maxY = n.X+n.Size, n.Y+n.Size

	for _, n := range l.Nodes[1:] {
		minX = math.Min(minX, n.X-n.Size)
		minY = math.Min(minY, n.Y-n.Size)
		maxX = math.Max(maxX, n.X+n.Size)
		maxY = math.Max(maxY, n.Y+n.Size)
	}
	return minX, minY, maxX, maxY
}
