//go:build js && wasm

package main

import (
	"fmt"
	"image/color"
	"math"
	"syscall/js"

	"github.com/ha1tch/skillnet/pkg/netdraw"
)

const fontFamily = "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif"

// canvas is a netdraw.Surface over an HTML canvas 2D context.
type canvas struct {
	el  js.Value
	ctx js.Value

	// background is painted by Clear; zero alpha clears to transparent.
	background color.NRGBA

	width, height float64
}

func newCanvas(el js.Value) *canvas {
	return &canvas{el: el, ctx: el.Call("getContext", "2d")}
}

// Reset resizes the backing store. Assigning width and height resets the
// context, and the transform is then set outright, so repeated calls
// never compound the scale.
func (c *canvas) Reset(width, height, dpr float64) {
	if !(dpr > 0) {
		dpr = 1
	}
	c.width, c.height = width, height
	c.el.Set("width", int(math.Round(width*dpr)))
	c.el.Set("height", int(math.Round(height*dpr)))
	style := c.el.Get("style")
	style.Set("width", fmt.Sprintf("%gpx", width))
	style.Set("height", fmt.Sprintf("%gpx", height))
	c.ctx.Call("setTransform", dpr, 0, 0, dpr, 0, 0)
}

func (c *canvas) Size() (float64, float64) { return c.width, c.height }

func (c *canvas) Clear() {
	c.ctx.Call("clearRect", 0, 0, c.width, c.height)
	if c.background.A > 0 {
		c.ctx.Set("fillStyle", cssColor(c.background))
		c.ctx.Call("fillRect", 0, 0, c.width, c.height)
	}
}

func (c *canvas) Line(x1, y1, x2, y2, width float64, col color.NRGBA) {
	c.ctx.Call("beginPath")
	c.ctx.Call("moveTo", x1, y1)
	c.ctx.Call("lineTo", x2, y2)
	c.ctx.Set("strokeStyle", cssColor(col))
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}

func (c *canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	c.arc(cx, cy, r)
	c.ctx.Set("fillStyle", cssColor(col))
	c.ctx.Call("fill")
}

func (c *canvas) StrokeCircle(cx, cy, r, width float64, col color.NRGBA) {
	c.arc(cx, cy, r)
	c.ctx.Set("strokeStyle", cssColor(col))
	c.ctx.Set("lineWidth", width)
	c.ctx.Call("stroke")
}

func (c *canvas) Glow(cx, cy, inner, outer float64, col color.NRGBA) {
	g := c.ctx.Call("createRadialGradient", cx, cy, inner, cx, cy, outer)
	g.Call("addColorStop", 0, cssColor(col))
	g.Call("addColorStop", 1, cssColor(netdraw.WithAlpha(col, 0)))
	c.arc(cx, cy, outer)
	c.ctx.Set("fillStyle", g)
	c.ctx.Call("fill")
}

func (c *canvas) Text(x, y float64, s string, st netdraw.TextStyle) {
	weight := ""
	if st.Bold {
		weight = "bold "
	}
	c.ctx.Set("font", fmt.Sprintf("%s%gpx %s", weight, st.Size, fontFamily))
	c.ctx.Set("textAlign", "center")
	c.ctx.Set("textBaseline", "top")
	if st.Shadow.A > 0 {
		c.ctx.Set("fillStyle", cssColor(st.Shadow))
		c.ctx.Call("fillText", s, x+1, y+1)
	}
	c.ctx.Set("fillStyle", cssColor(st.Color))
	c.ctx.Call("fillText", s, x, y)
}

func (c *canvas) arc(cx, cy, r float64) {
	c.ctx.Call("beginPath")
	c.ctx.Call("arc", cx, cy, math.Max(0, r), 0, 2*math.Pi)
}

func cssColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}
