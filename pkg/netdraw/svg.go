package netdraw

import (
	"fmt"
	"html"
	"image/color"
	"strings"
)

// SVG is a Surface that emits an SVG document. Each Clear starts a new
// document, so the output after a Render holds only that frame.
type SVG struct {
	Background color.NRGBA
	FontFamily string

	width, height float64
	dpr           float64
	defs          strings.Builder
	body          strings.Builder
	gradients     int
}

// NewSVG returns an SVG surface of the given logical size.
func NewSVG(width, height, dpr float64) *SVG {
	s := &SVG{
		Background: Background,
		FontFamily: "Segoe UI, Tahoma, Geneva, Verdana, sans-serif",
	}
	s.Reset(width, height, dpr)
	return s
}

// Reset sets the document size. The dpr only affects the pixel size
// declared on the root element; the viewBox stays in logical units.
func (s *SVG) Reset(width, height, dpr float64) {
	if !(dpr > 0) {
		dpr = 1
	}
	s.width, s.height, s.dpr = width, height, dpr
	s.Clear()
}

func (s *SVG) Size() (float64, float64) { return s.width, s.height }

func (s *SVG) Clear() {
	s.defs.Reset()
	s.body.Reset()
	s.gradients = 0
	s.body.WriteString(fmt.Sprintf(`<rect width="%.1f" height="%.1f" fill="%s"/>
`, s.width, s.height, svgColor(s.Background)))
}

func (s *SVG) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s"%s stroke-width="%.2f"/>
`, x1, y1, x2, y2, svgColor(c), opacity("stroke-opacity", c), width))
}

func (s *SVG) FillCircle(cx, cy, r float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>
`, cx, cy, r, svgColor(c), opacity("fill-opacity", c)))
}

func (s *SVG) StrokeCircle(cx, cy, r, width float64, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="none" stroke="%s"%s stroke-width="%.2f"/>
`, cx, cy, r, svgColor(c), opacity("stroke-opacity", c), width))
}

func (s *SVG) Glow(cx, cy, inner, outer float64, c color.NRGBA) {
	if outer <= 0 {
		return
	}
	s.gradients++
	id := fmt.Sprintf("glow%d", s.gradients)
	s.defs.WriteString(fmt.Sprintf(`<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%.2f" cy="%.2f" r="%.2f">
<stop offset="%.4f" stop-color="%s" stop-opacity="%.3f"/>
<stop offset="1" stop-color="%s" stop-opacity="0"/>
</radialGradient>
`, id, cx, cy, outer, inner/outer, svgColor(c), float64(c.A)/255, svgColor(c)))
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.2f" cy="%.2f" r="%.2f" fill="url(#%s)"/>
`, cx, cy, outer, id))
}

func (s *SVG) Text(x, y float64, text string, st TextStyle) {
	weight := "normal"
	if st.Bold {
		weight = "bold"
	}
	esc := html.EscapeString(text)
	if st.Shadow.A > 0 {
		s.text(x+1, y+1, esc, st.Size, weight, st.Shadow)
	}
	s.text(x, y, esc, st.Size, weight, st.Color)
}

func (s *SVG) text(x, y float64, esc string, size float64, weight string, c color.NRGBA) {
	s.body.WriteString(fmt.Sprintf(`<text x="%.2f" y="%.2f" font-size="%.2f" font-weight="%s" fill="%s"%s text-anchor="middle" dominant-baseline="hanging">%s</text>
`, x, y, size, weight, svgColor(c), opacity("fill-opacity", c), esc))
}

// String returns the complete document.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.2f %.2f" font-family="%s">
`, s.width*s.dpr, s.height*s.dpr, s.width, s.height, html.EscapeString(s.FontFamily)))
	if s.defs.Len() > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

// Bytes returns the complete document.
func (s *SVG) Bytes() []byte { return []byte(s.String()) }

func svgColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(attr string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, attr, float64(c.A)/255)
}
