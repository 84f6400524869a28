package netfile

import (
	"fmt"
	"strings"

	"github.com/ha1tch/skillnet/pkg/skillnet"
)

// GenerateDOT converts a graph to Graphviz DOT. Nodes are pinned at their
// reference offsets (in inches, y up) so `neato -n` keeps the authored
// layout; the center is drawn bold.
func GenerateDOT(g *skillnet.Graph) string {
	var sb strings.Builder

	name := g.Name
	if name == "" {
		name = "skills"
	}
	sb.WriteString("graph Skills {\n")
	sb.WriteString("    layout=neato;\n")
	sb.WriteString("    bgcolor=\"#0a0a0f\";\n")
	sb.WriteString("    node [shape=circle, style=filled, fontname=\"Helvetica\", fontsize=10, fontcolor=white, fixedsize=true];\n")
	sb.WriteString("    edge [color=\"#ffffff30\"];\n")
	sb.WriteString(fmt.Sprintf("    labelloc=\"t\";\n    label=\"%s\";\n    fontcolor=white;\n\n", escapeDOT(name)))

	for _, n := range g.Nodes() {
		attrs := []string{
			fmt.Sprintf("label=\"%s\"", escapeDOT(n.Label)),
			fmt.Sprintf("fillcolor=\"%sb3\"", n.Color),
			fmt.Sprintf("width=%.3f", 2*n.Size/72),
			fmt.Sprintf("pos=\"%.3f,%.3f!\"", n.DX/72, 0-n.DY/72),
		}
		if n.ID == g.Center() {
			attrs = append(attrs, "fontname=\"Helvetica-Bold\"", "fontsize=13")
		}
		sb.WriteString(fmt.Sprintf("    \"%s\" [%s];\n", escapeDOT(n.ID), strings.Join(attrs, ", ")))
	}
	sb.WriteString("\n")

	for _, e := range g.Edges() {
		sb.WriteString(fmt.Sprintf("    \"%s\" -- \"%s\";\n", escapeDOT(e.From), escapeDOT(e.To)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

// escapeDOT quotes s for a double-quoted DOT string. Label newlines become
// centered line breaks.
func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
