// Package skillnet provides the skills network model: the fixed node and
// edge tables, the viewport-relative layout, hit-testing and the
// hover/selection state machine.
package skillnet

import (
	"fmt"
	"math"
	"strings"
)

// NodeSpec is the authored description of a node at reference scale.
// DX and DY are offsets from the center point; Size is the base radius.
type NodeSpec struct {
	ID       string  `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	DX       float64 `json:"dx" yaml:"dx"`
	DY       float64 `json:"dy" yaml:"dy"`
	Size     float64 `json:"size" yaml:"size"`
	Color    string  `json:"color" yaml:"color"`
	Category string  `json:"category,omitempty" yaml:"category,omitempty"`
}

// Edge is an undirected relation between two node ids.
type Edge struct {
	From string
	To   string
}

// Touches reports whether the edge has id as one of its endpoints.
func (e Edge) Touches(id string) bool {
	return e.From == id || e.To == id
}

// Other returns the endpoint opposite id, or "" if the edge does not touch id.
func (e Edge) Other(id string) string {
	switch id {
	case e.From:
		return e.To
	case e.To:
		return e.From
	}
	return ""
}

// Graph holds the node table, the edge list and the designated center node.
// A Graph is not modified after construction, so it can be shared freely.
type Graph struct {
	Name   string
	center string
	nodes  []NodeSpec
	edges  []Edge
	index  map[string]int
}

// NewGraph creates an empty graph whose hub is the node with id center.
func NewGraph(center string) *Graph {
	return &Graph{
		center: center,
		nodes:  make([]NodeSpec, 0),
		edges:  make([]Edge, 0),
		index:  make(map[string]int),
	}
}

// AddNode appends a node. A node whose id is already present is ignored.
func (g *Graph) AddNode(n NodeSpec) {
	if _, ok := g.index[n.ID]; ok {
		return
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
}

// AddEdge appends an undirected edge between two node ids.
func (g *Graph) AddEdge(from, to string) {
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Connect adds a hub edge from the center to every listed id.
func (g *Graph) Connect(ids ...string) {
	for _, id := range ids {
		g.AddEdge(g.center, id)
	}
}

// Center returns the id of the hub node.
func (g *Graph) Center() string {
	return g.center
}

// Nodes returns a copy of the node table in authored order.
func (g *Graph) Nodes() []NodeSpec {
	out := make([]NodeSpec, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Edges returns a copy of the edge list.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the spec for id.
func (g *Graph) Node(id string) (NodeSpec, bool) {
	i, ok := g.index[id]
	if !ok {
		return NodeSpec{}, false
	}
	return g.nodes[i], true
}

// NodeIndex returns the position of id in the node table, or -1 if not found.
func (g *Graph) NodeIndex(id string) int {
	if i, ok := g.index[id]; ok {
		return i
	}
	return -1
}

// IDs returns node ids in authored order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.ID
	}
	return ids
}

// HasEdge reports whether a and b are directly connected, in either direction.
func (g *Graph) HasEdge(a, b string) bool {
	for _, e := range g.edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			return true
		}
	}
	return false
}

// NeighborsOf returns id itself plus every node sharing an edge with it.
// Unknown ids yield a set containing only the id.
func (g *Graph) NeighborsOf(id string) map[string]bool {
	set := map[string]bool{id: true}
	for _, e := range g.edges {
		if o := e.Other(id); o != "" {
			set[o] = true
		}
	}
	return set
}

// Degree returns the number of edges touching id.
func (g *Graph) Degree(id string) int {
	n := 0
	for _, e := range g.edges {
		if e.Touches(id) {
			n++
		}
	}
	return n
}

// Validate checks the graph for consistency.
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return fmt.Errorf("graph has no nodes")
	}

	seen := make(map[string]bool, len(g.nodes))
	for i, n := range g.nodes {
		if n.ID == "" {
			return fmt.Errorf("node %d: empty id", i)
		}
		if seen[n.ID] {
			return fmt.Errorf("node %d: duplicate id %q", i, n.ID)
		}
		seen[n.ID] = true
		if !finite(n.DX) || !finite(n.DY) || !finite(n.Size) {
			return fmt.Errorf("node %q: offset and size must be finite", n.ID)
		}
		if n.Size <= 0 {
			return fmt.Errorf("node %q: size must be positive, got %g", n.ID, n.Size)
		}
	}

	if g.center == "" {
		return fmt.Errorf("no center node")
	}
	if !seen[g.center] {
		return fmt.Errorf("center node %q not in nodes", g.center)
	}

	pairs := make(map[[2]string]bool, len(g.edges))
	for i, e := range g.edges {
		if !seen[e.From] {
			return fmt.Errorf("edge %d: from node %q not in nodes", i, e.From)
		}
		if !seen[e.To] {
			return fmt.Errorf("edge %d: to node %q not in nodes", i, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("edge %d: self-edge on %q", i, e.From)
		}
		key := [2]string{e.From, e.To}
		if key[0] > key[1] {
			key[0], key[1] = key[1], key[0]
		}
		if pairs[key] {
			return fmt.Errorf("edge %d: duplicate edge %s-%s", i, e.From, e.To)
		}
		pairs[key] = true
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// String returns a short summary of the graph.
func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Graph: %s\n", g.Name))
	sb.WriteString(fmt.Sprintf("  Center: %s\n", g.center))
	sb.WriteString(fmt.Sprintf("  Nodes: %d\n", len(g.nodes)))
	sb.WriteString(fmt.Sprintf("  Edges: %d\n", len(g.edges)))
	return sb.String()
}
