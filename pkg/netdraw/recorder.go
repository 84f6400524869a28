package netdraw

import (
	"fmt"
	"image/color"
	"strings"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string // clear, line, fill, stroke, glow, text
	Args  []float64
	Text  string
	Color color.NRGBA
	Style TextStyle
}

func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind)
	for _, a := range o.Args {
		fmt.Fprintf(&b, " %.3f", a)
	}
	if o.Kind == "text" {
		fmt.Fprintf(&b, " %q size=%.2f bold=%v", o.Text, o.Style.Size, o.Style.Bold)
		fmt.Fprintf(&b, " #%02x%02x%02x/%d", o.Style.Color.R, o.Style.Color.G, o.Style.Color.B, o.Style.Color.A)
	} else if o.Kind != "clear" {
		fmt.Fprintf(&b, " #%02x%02x%02x/%d", o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	}
	return b.String()
}

// Recorder is a Surface that keeps a log of drawing calls. Clear wipes the
// log, so after a Render it holds exactly that frame.
type Recorder struct {
	width, height float64
	dpr           float64
	resets        int
	ops           []Op
}

// NewRecorder returns a recorder of the given logical size.
func NewRecorder(width, height, dpr float64) *Recorder {
	r := &Recorder{}
	r.Reset(width, height, dpr)
	return r
}

func (r *Recorder) Reset(width, height, dpr float64) {
	if !(dpr > 0) {
		dpr = 1
	}
	r.width, r.height, r.dpr = width, height, dpr
	r.resets++
	r.ops = r.ops[:0]
}

func (r *Recorder) Size() (float64, float64) { return r.width, r.height }

// Transform returns the logical-to-buffer scale, which is always the dpr
// passed to the last Reset.
func (r *Recorder) Transform() float64 { return r.dpr }

// Resets counts Reset calls.
func (r *Recorder) Resets() int { return r.resets }

func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: "clear"})
}

func (r *Recorder) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: "line", Args: []float64{x1, y1, x2, y2, width}, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: "fill", Args: []float64{cx, cy, rad}, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: "stroke", Args: []float64{cx, cy, rad, width}, Color: c})
}

func (r *Recorder) Glow(cx, cy, inner, outer float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: "glow", Args: []float64{cx, cy, inner, outer}, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, st TextStyle) {
	r.ops = append(r.ops, Op{Kind: "text", Args: []float64{x, y}, Text: s, Style: st})
}

// Ops returns a copy of the recorded calls.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.ops))
	copy(out, r.ops)
	return out
}

// Count returns how many recorded calls have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Dump writes one line per recorded call.
func (r *Recorder) Dump() string {
	var b strings.Builder
	for _, o := range r.ops {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}
