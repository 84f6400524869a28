// Raster rendering of the skills network.
// Draws at a supersampled size with antialiased vector paths and
// downsamples for the final image.

package netdraw

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Background is the default page colour behind the network.
var Background = color.NRGBA{R: 10, G: 10, B: 15, A: 255} // #0a0a0f

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// glowSteps is the number of discs stacked to approximate a radial fade.
const glowSteps = 8

// maxBufferSide bounds the supersampled buffer along either axis.
const maxBufferSide = 6000

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	fontsOnce.Do(func() {
		var err error
		regularFont, err = opentype.Parse(goregular.TTF)
		if err != nil {
			panic(err) // embedded font
		}
		boldFont, err = opentype.Parse(gobold.TTF)
		if err != nil {
			panic(err)
		}
	})
}

type faceKey struct {
	size int // font size in 1/4 buffer pixels
	bold bool
}

// Raster is a Surface backed by an in-memory RGBA image.
type Raster struct {
	Background color.NRGBA

	width, height float64
	dpr           float64
	ss            int     // supersampling factor
	k             float64 // logical to buffer pixels: dpr * ss

	img   *image.RGBA
	ras   *vector.Rasterizer
	faces map[faceKey]font.Face
}

// NewRaster returns a raster surface of the given logical size.
func NewRaster(width, height, dpr float64) *Raster {
	loadFonts()
	r := &Raster{Background: Background}
	r.Reset(width, height, dpr)
	return r
}

// Reset reallocates the buffer. The transform is recomputed from dpr, never
// multiplied onto the previous one.
func (r *Raster) Reset(width, height, dpr float64) {
	if !(dpr > 0) {
		dpr = 1
	}
	if !(width > 0) {
		width = 1
	}
	if !(height > 0) {
		height = 1
	}
	ss := 4
	if dpr >= 2 {
		ss = 2
	}
	for ss > 1 && math.Max(width, height)*dpr*float64(ss) > maxBufferSide {
		ss /= 2
	}

	r.width, r.height = width, height
	r.dpr = dpr
	r.ss = ss
	r.k = dpr * float64(ss)

	bw := int(math.Ceil(width * r.k))
	bh := int(math.Ceil(height * r.k))
	r.img = image.NewRGBA(image.Rect(0, 0, bw, bh))
	if r.ras == nil {
		r.ras = vector.NewRasterizer(bw, bh)
	} else {
		r.ras.Reset(bw, bh)
	}

	for _, f := range r.faces {
		f.Close()
	}
	r.faces = make(map[faceKey]font.Face)
}

func (r *Raster) Size() (float64, float64) { return r.width, r.height }

// DPR returns the device pixel ratio of the last Reset.
func (r *Raster) DPR() float64 { return r.dpr }

// Transform returns the logical-to-buffer scale currently in effect.
func (r *Raster) Transform() float64 { return r.k }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

func (r *Raster) Line(x1, y1, x2, y2, width float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	x1, y1, x2, y2 = x1*r.k, y1*r.k, x2*r.k, y2*r.k
	dx, dy := x2-x1, y2-y1
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	half := width * r.k / 2
	px, py := -dy/dist*half, dx/dist*half

	r.begin()
	r.ras.MoveTo(f32(x1+px), f32(y1+py))
	r.ras.LineTo(f32(x2+px), f32(y2+py))
	r.ras.LineTo(f32(x2-px), f32(y2-py))
	r.ras.LineTo(f32(x1-px), f32(y1-py))
	r.ras.ClosePath()
	r.fill(c)
}

func (r *Raster) FillCircle(cx, cy, rad float64, c color.NRGBA) {
	if c.A == 0 || rad <= 0 {
		return
	}
	r.begin()
	r.circle(cx*r.k, cy*r.k, rad*r.k, false)
	r.fill(c)
}

func (r *Raster) StrokeCircle(cx, cy, rad, width float64, c color.NRGBA) {
	if c.A == 0 || rad <= 0 {
		return
	}
	outer := (rad + width/2) * r.k
	inner := (rad - width/2) * r.k

	// The inner circle runs the other way so its coverage cancels out.
	r.begin()
	r.circle(cx*r.k, cy*r.k, outer, false)
	if inner > 0 {
		r.circle(cx*r.k, cy*r.k, inner, true)
	}
	r.fill(c)
}

func (r *Raster) Glow(cx, cy, inner, outer float64, c color.NRGBA) {
	if c.A == 0 || outer <= 0 {
		return
	}
	step := c
	step.A = uint8(math.Max(1, math.Round(float64(c.A)/glowSteps)))
	for i := glowSteps; i >= 1; i-- {
		rad := inner + (outer-inner)*float64(i)/glowSteps
		r.FillCircle(cx, cy, rad, step)
	}
}

func (r *Raster) Text(x, y float64, s string, st TextStyle) {
	if s == "" || st.Size <= 0 {
		return
	}
	face := r.face(st.Size, st.Bold)
	if st.Shadow.A > 0 {
		r.text(face, x+1, y+1, s, st.Shadow)
	}
	r.text(face, x, y, s, st.Color)
}

func (r *Raster) text(face font.Face, x, y float64, s string, c color.NRGBA) {
	width := font.MeasureString(face, s)
	ascent := face.Metrics().Ascent

	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(x*r.k*64)) - width/2,
			Y: fixed.Int26_6(math.Round(y*r.k*64)) + ascent,
		},
	}
	d.DrawString(s)
}

func (r *Raster) face(size float64, bold bool) font.Face {
	key := faceKey{size: int(math.Round(size * r.k * 4)), bold: bold}
	if f, ok := r.faces[key]; ok {
		return f
	}
	fnt := regularFont
	if bold {
		fnt = boldFont
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(key.size) / 4,
		DPI:     72,
		Hinting: font.HintingNone, // supersampled instead
	})
	if err != nil {
		panic(err)
	}
	r.faces[key] = f
	return f
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.ras.Reset(b.Dx(), b.Dy())
}

func (r *Raster) fill(c color.NRGBA) {
	r.ras.DrawOp = draw.Over
	r.ras.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// circle appends a closed circle to the current path, clockwise on screen
// unless reverse is set.
func (r *Raster) circle(cx, cy, rad float64, reverse bool) {
	k := rad * kappa
	if !reverse {
		r.ras.MoveTo(f32(cx+rad), f32(cy))
		r.ras.CubeTo(f32(cx+rad), f32(cy+k), f32(cx+k), f32(cy+rad), f32(cx), f32(cy+rad))
		r.ras.CubeTo(f32(cx-k), f32(cy+rad), f32(cx-rad), f32(cy+k), f32(cx-rad), f32(cy))
		r.ras.CubeTo(f32(cx-rad), f32(cy-k), f32(cx-k), f32(cy-rad), f32(cx), f32(cy-rad))
		r.ras.CubeTo(f32(cx+k), f32(cy-rad), f32(cx+rad), f32(cy-k), f32(cx+rad), f32(cy))
	} else {
		r.ras.MoveTo(f32(cx+rad), f32(cy))
		r.ras.CubeTo(f32(cx+rad), f32(cy-k), f32(cx+k), f32(cy-rad), f32(cx), f32(cy-rad))
		r.ras.CubeTo(f32(cx-k), f32(cy-rad), f32(cx-rad), f32(cy-k), f32(cx-rad), f32(cy))
		r.ras.CubeTo(f32(cx-rad), f32(cy+k), f32(cx-k), f32(cy+rad), f32(cx), f32(cy+rad))
		r.ras.CubeTo(f32(cx+k), f32(cy+rad), f32(cx+rad), f32(cy+k), f32(cx+rad), f32(cy))
	}
	r.ras.ClosePath()
}

// Buffer returns the supersampled drawing buffer.
func (r *Raster) Buffer() *image.RGBA { return r.img }

// Image downsamples the buffer to width*dpr x height*dpr device pixels.
func (r *Raster) Image() *image.RGBA {
	w := int(math.Ceil(r.width * r.dpr))
	h := int(math.Ceil(r.height * r.dpr))
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), r.img, r.img.Bounds(), draw.Src, nil)
	return out
}

// EncodePNG writes the downsampled image as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return png.Encode(w, r.Image())
}

func f32(v float64) float32 { return float32(v) }
