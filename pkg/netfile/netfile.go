// Package netfile reads and writes skills network graphs as JSON or YAML
// documents, and hot-reloads them from disk.
package netfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ha1tch/skillnet/pkg/netdraw"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatDOT  Format = "dot" // write only
)

// document is the on-disk representation of a graph. Edges are written as
// two-element id lists.
type document struct {
	Name   string              `json:"name,omitempty" yaml:"name,omitempty"`
	Center string              `json:"center" yaml:"center"`
	Nodes  []skillnet.NodeSpec `json:"nodes" yaml:"nodes"`
	Edges  []pair              `json:"edges" yaml:"edges"`
}

// pair is one edge. It is written to YAML in flow style, one edge a line.
type pair []string

func (p pair) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, id := range p {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: id})
	}
	return n, nil
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".dot", ".gv":
		return FormatDOT, nil
	}
	return "", fmt.Errorf("unsupported graph file extension %q (use .json, .yaml, .yml or .dot)", filepath.Ext(path))
}

// Parse decodes and validates a graph document.
func Parse(data []byte, f Format) (*skillnet.Graph, error) {
	var doc document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	case FormatDOT:
		return nil, fmt.Errorf("dot graphs can be written but not read")
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
	return doc.graph()
}

func (doc document) graph() (*skillnet.Graph, error) {
	g := skillnet.NewGraph(doc.Center)
	g.Name = doc.Name
	for i, n := range doc.Nodes {
		if _, err := netdraw.ParseColor(n.Color); err != nil {
			return nil, fmt.Errorf("node %d (%s): %w", i, n.ID, err)
		}
		if _, dup := g.Node(n.ID); dup {
			return nil, fmt.Errorf("node %d: duplicate id %q", i, n.ID)
		}
		g.AddNode(n)
	}
	for i, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("edge %d: want 2 node ids, got %d", i, len(e))
		}
		g.AddEdge(e[0], e[1])
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("invalid graph: %w", err)
	}
	return g, nil
}

func toDocument(g *skillnet.Graph) document {
	doc := document{
		Name:   g.Name,
		Center: g.Center(),
		Nodes:  g.Nodes(),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, pair{e.From, e.To})
	}
	return doc
}

// Marshal encodes a graph.
func Marshal(g *skillnet.Graph, f Format) ([]byte, error) {
	if f == FormatDOT {
		return []byte(GenerateDOT(g)), nil
	}
	doc := toDocument(g)
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown format %q", f)
}

// Load reads a graph file, picking the format from its extension.
func Load(path string) (*skillnet.Graph, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	g, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if g.Name == "" {
		g.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return g, nil
}

// Save writes a graph file, picking the format from its extension.
func Save(path string, g *skillnet.Graph) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(g, f)
	if err != nil {
		return fmt.Errorf("encode graph: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write graph %s: %w", path, err)
	}
	return nil
}

// LoadOrDefault loads path, or returns the built-in graph when path is
// empty.
func LoadOrDefault(path string) (*skillnet.Graph, error) {
	if path == "" {
		return skillnet.DefaultGraph(), nil
	}
	return Load(path)
}
