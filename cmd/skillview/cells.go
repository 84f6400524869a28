package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/skillnet/pkg/netdraw"
)

// upperHalf draws a cell as two stacked pixels: foreground on top,
// background below.
const upperHalf = '▀'

// textCell is a glyph placed over the pixel layer.
type textCell struct {
	r    rune
	fg   color.NRGBA
	bold bool
	cont bool // second column of a wide rune
}

// cells is a netdraw.Surface over a terminal grid. Every cell holds two
// square pixels of pitch logical units; text snaps to whole cells.
type cells struct {
	background color.NRGBA
	pitch      float64

	width, height float64
	cols, rows    int
	pix           []color.NRGBA // cols x rows*2
	text          map[int]textCell
}

func newCells(pitch float64) *cells {
	return &cells{background: netdraw.Background, pitch: pitch, text: map[int]textCell{}}
}

// Grid returns the logical size covered by a cols x rows block of cells.
func (c *cells) Grid(cols, rows int) (float64, float64) {
	return float64(cols) * c.pitch, float64(rows) * 2 * c.pitch
}

// Reset ignores dpr: a terminal cell has no finer resolution.
func (c *cells) Reset(width, height, dpr float64) {
	c.width, c.height = width, height
	c.cols = int(math.Ceil(width / c.pitch))
	c.rows = int(math.Ceil(height / c.pitch / 2))
	c.pix = make([]color.NRGBA, c.cols*c.rows*2)
	c.Clear()
}

func (c *cells) Size() (float64, float64) { return c.width, c.height }

func (c *cells) Clear() {
	for i := range c.pix {
		c.pix[i] = c.background
	}
	clear(c.text)
}

func (c *cells) Line(x1, y1, x2, y2, width float64, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	ax, ay := x1/c.pitch, y1/c.pitch
	bx, by := x2/c.pitch, y2/c.pitch
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		c.blend(int(ax), int(ay), col)
		return
	}
	lastX, lastY := -1, -1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := int(math.Floor(ax + (bx-ax)*t))
		py := int(math.Floor(ay + (by-ay)*t))
		if px == lastX && py == lastY {
			continue
		}
		lastX, lastY = px, py
		c.blend(px, py, col)
	}
}

func (c *cells) FillCircle(cx, cy, r float64, col color.NRGBA) {
	c.disc(cx, cy, r, func(d float64) (color.NRGBA, bool) {
		return col, d <= r
	})
}

func (c *cells) StrokeCircle(cx, cy, r, width float64, col color.NRGBA) {
	half := math.Max(width/2, c.pitch/2)
	c.disc(cx, cy, r+half, func(d float64) (color.NRGBA, bool) {
		return col, math.Abs(d-r) <= half
	})
}

func (c *cells) Glow(cx, cy, inner, outer float64, col color.NRGBA) {
	if outer <= inner {
		return
	}
	c.disc(cx, cy, outer, func(d float64) (color.NRGBA, bool) {
		if d < inner || d > outer {
			return col, false
		}
		return netdraw.WithAlpha(col, 1-(d-inner)/(outer-inner)), true
	})
}

func (c *cells) Text(x, y float64, s string, st netdraw.TextStyle) {
	if s == "" {
		return
	}
	row := int(math.Floor(y / c.pitch / 2))
	col := int(math.Round(x/c.pitch - float64(runewidth.StringWidth(s))/2))
	fg := netdraw.Blend(c.background, st.Color)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.put(col, row, textCell{r: r, fg: fg, bold: st.Bold})
		if w == 2 {
			c.put(col+1, row, textCell{cont: true})
		}
		col += w
	}
}

// Pixel returns the pixel at grid position (x, y), for tests.
func (c *cells) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return color.NRGBA{}
	}
	return c.pix[y*c.cols+x]
}

// TextAt returns the glyph at cell (col, row).
func (c *cells) TextAt(col, row int) (rune, bool) {
	t, ok := c.text[row*c.cols+col]
	if !ok || t.cont {
		return 0, false
	}
	return t.r, true
}

// Flush copies the grid onto s with its top-left cell at (x0, y0).
func (c *cells) Flush(s tcell.Screen, x0, y0 int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.pix[(row*2)*c.cols+col]
			bottom := c.pix[(row*2+1)*c.cols+col]
			if t, ok := c.text[row*c.cols+col]; ok {
				if t.cont {
					continue
				}
				bg := average(top, bottom)
				st := tcell.StyleDefault.Foreground(tcellColor(t.fg)).Background(tcellColor(bg)).Bold(t.bold)
				s.SetContent(x0+col, y0+row, t.r, nil, st)
				continue
			}
			st := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			s.SetContent(x0+col, y0+row, upperHalf, nil, st)
		}
	}
}

// disc visits every pixel whose center lies within radius of (cx, cy) and
// blends what paint returns. A disc smaller than one pixel still marks the
// pixel under its center.
func (c *cells) disc(cx, cy, radius float64, paint func(d float64) (color.NRGBA, bool)) {
	if radius <= 0 {
		return
	}
	if radius < c.pitch/2 {
		if col, ok := paint(0); ok && col.A > 0 {
			c.blend(int(math.Floor(cx/c.pitch)), int(math.Floor(cy/c.pitch)), col)
		}
		return
	}
	x0 := int(math.Floor((cx - radius) / c.pitch))
	x1 := int(math.Ceil((cx + radius) / c.pitch))
	y0 := int(math.Floor((cy - radius) / c.pitch))
	y1 := int(math.Ceil((cy + radius) / c.pitch))
	for py := y0; py <= y1; py++ {
		for px := x0; px <= x1; px++ {
			mx := (float64(px) + 0.5) * c.pitch
			my := (float64(py) + 0.5) * c.pitch
			col, ok := paint(math.Hypot(mx-cx, my-cy))
			if ok && col.A > 0 {
				c.blend(px, py, col)
			}
		}
	}
}

func (c *cells) blend(px, py int, col color.NRGBA) {
	if px < 0 || py < 0 || px >= c.cols || py >= c.rows*2 {
		return
	}
	i := py*c.cols + px
	c.pix[i] = netdraw.Blend(c.pix[i], col)
}

func (c *cells) put(col, row int, t textCell) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	c.text[row*c.cols+col] = t
}

func average(a, b color.NRGBA) color.NRGBA {
	return color.NRGBA{
		R: uint8((int(a.R) + int(b.R)) / 2),
		G: uint8((int(a.G) + int(b.G)) / 2),
		B: uint8((int(a.B) + int(b.B)) / 2),
		A: 255,
	}
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
