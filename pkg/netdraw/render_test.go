package netdraw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/ha1tch/skillnet/pkg/skillnet"
)

func referenceScene(active string, selected bool, p float64) Scene {
	g := skillnet.DefaultGraph()
	return Scene{
		Graph:    g,
		Layout:   skillnet.ComputeLayout(g, 550, 550),
		Active:   active,
		Selected: selected,
		Progress: p,
	}
}

func TestRenderStartsWithClear(t *testing.T) {
	rec := NewRecorder(550, 550, 1)
	Render(rec, referenceScene("", false, 0))

	ops := rec.Ops()
	if len(ops) == 0 || ops[0].Kind != "clear" {
		t.Fatalf("first op should be clear, got %v", ops)
	}
	if rec.Count("clear") != 1 {
		t.Errorf("Expected 1 clear, got %d", rec.Count("clear"))
	}
}

func TestRenderIdempotent(t *testing.T) {
	scenes := []Scene{
		referenceScene("", false, 0),
		referenceScene("aws", false, 1),
		referenceScene(skillnet.CenterID, true, 0.5),
	}
	for _, sc := range scenes {
		rec := NewRecorder(550, 550, 1)
		Render(rec, sc)
		first := rec.Dump()
		Render(rec, sc)
		if second := rec.Dump(); first != second {
			t.Errorf("active %q: second render differs from the first", sc.Active)
		}
	}
}

func TestRenderCounts(t *testing.T) {
	sc := referenceScene("", false, 0)
	rec := NewRecorder(550, 550, 1)
	Render(rec, sc)

	if got, want := rec.Count("line"), len(sc.Graph.Edges()); got != want {
		t.Errorf("Expected %d lines, got %d", want, got)
	}
	if got := rec.Count("fill"); got != sc.Graph.Len() {
		t.Errorf("Expected %d node fills, got %d", sc.Graph.Len(), got)
	}
	if rec.Count("glow") != 0 || rec.Count("stroke") != 0 {
		t.Error("idle scene should have no glow or ring")
	}
	// Shadows belong to the surface; every default label is one line.
	if got := rec.Count("text"); got != sc.Graph.Len() {
		t.Errorf("Expected %d labels, got %d", sc.Graph.Len(), got)
	}
}

func highlightedLines(rec *Recorder) int {
	n := 0
	for _, o := range rec.Ops() {
		if o.Kind == "line" && o.Color == EdgeHighlight {
			n++
		}
	}
	return n
}

func TestRenderHighlightsIncidentEdges(t *testing.T) {
	for _, id := range []string{skillnet.CenterID, "aws", "rag", "php"} {
		sc := referenceScene(id, false, 1)
		rec := NewRecorder(550, 550, 1)
		Render(rec, sc)
		if got, want := highlightedLines(rec), sc.Graph.Degree(id); got != want {
			t.Errorf("%s: %d highlighted edges, want %d", id, got, want)
		}
	}
}

func TestRenderNoHighlightAtZeroProgress(t *testing.T) {
	rec := NewRecorder(550, 550, 1)
	Render(rec, referenceScene("aws", true, 0))
	if highlightedLines(rec) != 0 {
		t.Error("edges highlighted with zero progress")
	}
	if rec.Count("glow") != 0 || rec.Count("stroke") != 0 {
		t.Error("zero progress should draw the node as idle")
	}
}

func TestRenderActiveNode(t *testing.T) {
	sc := referenceScene(skillnet.CenterID, true, 1)
	rec := NewRecorder(550, 550, 1)
	Render(rec, sc)

	var ring, glow *Op
	ops := rec.Ops()
	for i := range ops {
		switch ops[i].Kind {
		case "stroke":
			ring = &ops[i]
		case "glow":
			glow = &ops[i]
		}
	}
	if ring == nil || glow == nil {
		t.Fatal("selected node should have a ring and a glow")
	}

	r := 38 * (1 + ActiveGrowth)
	if math.Abs(ring.Args[2]-(r+RingGap)) > 1e-9 {
		t.Errorf("ring radius %g, want %g", ring.Args[2], r+RingGap)
	}
	if ring.Args[3] != RingWidth || ring.Color != SelectionRing {
		t.Errorf("ring style width=%g colour=%v", ring.Args[3], ring.Color)
	}
	if glow.Args[2] != r || glow.Args[3] != r+GlowSpread {
		t.Errorf("glow radii %g..%g, want %g..%g", glow.Args[2], glow.Args[3], r, r+GlowSpread)
	}
	if glow.Color.A != alpha8(GlowAlpha) {
		t.Errorf("glow alpha %d, want %d", glow.Color.A, alpha8(GlowAlpha))
	}
}

func TestRenderHoverHasNoRing(t *testing.T) {
	rec := NewRecorder(550, 550, 1)
	Render(rec, referenceScene("aws", false, 1))
	if rec.Count("stroke") != 0 {
		t.Error("hovered node should not get a selection ring")
	}
	if rec.Count("glow") != 1 {
		t.Errorf("Expected 1 glow, got %d", rec.Count("glow"))
	}
}

func TestRenderLabels(t *testing.T) {
	rec := NewRecorder(550, 550, 1)
	Render(rec, referenceScene("", false, 0))

	for _, o := range rec.Ops() {
		if o.Kind != "text" || o.Text != "B.M. Khashrul Alam" {
			continue
		}
		if o.Args[0] != 275 || o.Args[1] != 215+38+LabelGap {
			t.Errorf("center label at (%g, %g)", o.Args[0], o.Args[1])
		}
		if !o.Style.Bold || o.Style.Size != CenterFontSize {
			t.Errorf("center label style %+v", o.Style)
		}
		if o.Style.Shadow != LabelShadow {
			t.Errorf("center label shadow %v", o.Style.Shadow)
		}
		return
	}
	t.Error("center label not drawn")
}

func TestRenderLabelGrowsWithProgress(t *testing.T) {
	rec := NewRecorder(550, 550, 1)
	Render(rec, referenceScene("aws", false, 0.5))
	for _, o := range rec.Ops() {
		if o.Kind == "text" && o.Text == "AWS" {
			if o.Style.Size != 11 || o.Style.Color != LabelActiveColor {
				t.Errorf("half-way label style %+v", o.Style)
			}
			return
		}
	}
	t.Error("AWS label not drawn")
}

func TestRenderMultilineLabel(t *testing.T) {
	g := skillnet.NewGraph("a")
	g.AddNode(skillnet.NodeSpec{ID: "a", Label: "Two\nLines", Size: 10, Color: "#ffffff"})
	sc := Scene{Graph: g, Layout: skillnet.ComputeLayout(g, 550, 550)}

	rec := NewRecorder(550, 550, 1)
	Render(rec, sc)

	var ys []float64
	for _, o := range rec.Ops() {
		if o.Kind == "text" {
			ys = append(ys, o.Args[1])
		}
	}
	if len(ys) != 2 || ys[1]-ys[0] != LineSpacing {
		t.Errorf("label lines at %v", ys)
	}
}

func TestRasterRedrawIdentical(t *testing.T) {
	g := skillnet.DefaultGraph()
	sc := Scene{Graph: g, Layout: skillnet.ComputeLayout(g, 200, 200), Active: "aws", Selected: true, Progress: 1}

	r := NewRaster(200, 200, 1)
	Render(r, sc)
	first := append([]byte(nil), r.Buffer().Pix...)
	Render(r, sc)
	if !bytes.Equal(first, r.Buffer().Pix) {
		t.Error("second render is not pixel-identical")
	}
}

func TestRasterDrawsNodes(t *testing.T) {
	g := skillnet.DefaultGraph()
	l := skillnet.ComputeLayout(g, 200, 200)
	r := NewRaster(200, 200, 1)
	Render(r, Scene{Graph: g, Layout: l})

	img := r.Image()
	if img.Bounds().Dx() != 200 || img.Bounds().Dy() != 200 {
		t.Fatalf("image size %v", img.Bounds())
	}
	c, _ := l.Node(skillnet.CenterID)
	px := img.RGBAAt(int(c.X), int(c.Y))
	if px.R < 100 {
		t.Errorf("center node not painted, pixel %v", px)
	}
	corner := img.RGBAAt(1, 1)
	if absDiff(corner.R, Background.R) > 2 || absDiff(corner.G, Background.G) > 2 || absDiff(corner.B, Background.B) > 2 {
		t.Errorf("corner pixel %v, want background", corner)
	}
}

func TestRasterResetDoesNotCompound(t *testing.T) {
	r := NewRaster(100, 50, 2)
	k := r.Transform()
	r.Reset(100, 50, 2)
	r.Reset(100, 50, 2)
	if r.Transform() != k {
		t.Errorf("transform changed from %g to %g", k, r.Transform())
	}
	if b := r.Buffer().Bounds(); b.Dx() != int(100*k) || b.Dy() != int(50*k) {
		t.Errorf("buffer %v, want %gx%g", b, 100*k, 50*k)
	}
	if img := r.Image(); img.Bounds().Dx() != 200 || img.Bounds().Dy() != 100 {
		t.Errorf("device image %v, want 200x100", img.Bounds())
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(60, 60, 1)
	r.Clear()
	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestSVGOutput(t *testing.T) {
	s := NewSVG(550, 550, 2)
	Render(s, referenceScene("aws", true, 1))
	out := s.String()

	if !strings.HasPrefix(out, "<?xml") || !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document is not well framed")
	}
	if !strings.Contains(out, `width="1100" height="1100" viewBox="0 0 550.00 550.00"`) {
		t.Error("root element should declare device size and logical viewBox")
	}
	if n := strings.Count(out, "<radialGradient"); n != 1 {
		t.Errorf("Expected 1 gradient, got %d", n)
	}

	Render(s, referenceScene("", false, 0))
	if out := s.String(); strings.Contains(out, "<defs>") {
		t.Error("idle frame should not keep the previous frame's gradients")
	}
}

func TestSVGEscapesText(t *testing.T) {
	s := NewSVG(100, 100, 1)
	s.Text(50, 10, "R&D <ops>", TextStyle{Size: 10, Color: LabelColor})
	out := s.String()
	if !strings.Contains(out, "R&amp;D &lt;ops&gt;") {
		t.Errorf("label not escaped: %s", out)
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
