package skillnet

import "sort"

// Hit-test tuning, in logical units.
const (
	HitTolerance = 8.0 // added to the base radius
	TieDistance  = 2.0 // distances this close are considered equal
)

// Candidate is a node within hit range of a point.
type Candidate struct {
	Node     Node
	Distance float64
}

// Candidates returns every node whose base radius plus HitTolerance
// contains (x, y), ordered best first: by ascending distance, except that
// distances within TieDistance of each other are ordered by ascending base
// size so that a small node drawn over a large one wins.
func Candidates(nodes []Node, x, y float64) []Candidate {
	p := Point{x, y}
	var out []Candidate
	for _, n := range nodes {
		d := p.Dist(n.Center())
		if d <= n.Size+HitTolerance {
			out = append(out, Candidate{Node: n, Distance: d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if diff := a.Distance - b.Distance; diff > TieDistance || diff < -TieDistance {
			return a.Distance < b.Distance
		}
		return a.Node.Size < b.Node.Size
	})
	return out
}

// HitTest returns the node under (x, y), if any.
func HitTest(nodes []Node, x, y float64) (Node, bool) {
	c := Candidates(nodes, x, y)
	if len(c) == 0 {
		return Node{}, false
	}
	return c[0].Node, true
}

// HitTest returns the node under (x, y) in this layout, if any.
func (l *Layout) HitTest(x, y float64) (Node, bool) {
	return HitTest(l.Nodes, x, y)
}
