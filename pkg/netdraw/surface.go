// Package netdraw renders a skills network scene onto a 2D immediate-mode
// drawing surface, and provides raster, SVG and recording surfaces.
package netdraw

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Surface is a 2D immediate-mode drawing context. All coordinates are
// logical pixels; the surface maps them onto its drawing buffer.
type Surface interface {
	// Reset resizes the drawing buffer to width*dpr x height*dpr and sets
	// the logical-to-buffer transform to exactly dpr. Calling Reset twice
	// must not compound the scale.
	Reset(width, height, dpr float64)
	// Size returns the logical size set by the last Reset.
	Size() (width, height float64)
	// Clear erases the whole surface.
	Clear()
	Line(x1, y1, x2, y2, width float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, width float64, c color.NRGBA)
	// Glow fills a radial gradient from c at radius inner to fully
	// transparent at radius outer.
	Glow(cx, cy, inner, outer float64, c color.NRGBA)
	// Text draws one line of text horizontally centered on x with its top
	// edge at y.
	Text(x, y float64, s string, st TextStyle)
}

// TextStyle configures a Text call.
type TextStyle struct {
	Size   float64 // font size in logical pixels
	Bold   bool
	Color  color.NRGBA
	Shadow color.NRGBA // drawn one unit down and right; zero alpha disables
}

// ParseColor parses a #rrggbb or #rgb colour.
func ParseColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// MustColor is ParseColor for constants.
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA builds a colour from 8-bit channels and a 0..1 alpha, like CSS rgba().
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// WithAlpha returns c with its alpha multiplied by a.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alpha8(float64(c.A) / 255 * a)
	return c
}

// Blend composites c over bg and returns an opaque colour. Used by
// surfaces that cannot do alpha themselves.
func Blend(bg, c color.NRGBA) color.NRGBA {
	if c.A == 255 {
		return c
	}
	a := float64(c.A) / 255
	under := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	over := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := under.BlendRgb(over, a).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

type backdrop struct {
	Surface
	paint func(Surface)
}

// WithBackdrop returns s with paint run after every Clear, so whatever
// paint draws sits underneath the rest of the frame.
func WithBackdrop(s Surface, paint func(Surface)) Surface {
	if paint == nil {
		return s
	}
	return backdrop{Surface: s, paint: paint}
}

func (b backdrop) Clear() {
	b.Surface.Clear()
	b.paint(b.Surface)
}
