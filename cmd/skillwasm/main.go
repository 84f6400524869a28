//go:build js && wasm

// Command skillwasm binds the skills network to the page's canvases when
// built with GOOS=js GOARCH=wasm.
package main

import (
	"log/slog"
	"syscall/js"
	"time"

	"github.com/ha1tch/skillnet/pkg/constellation"
	"github.com/ha1tch/skillnet/pkg/netfile"
	"github.com/ha1tch/skillnet/pkg/netview"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

const (
	networkID       = "skillsNetwork"
	constellationID = "constellation"
	ease            = 250 * time.Millisecond
)

// console sends log lines to the browser console.
type console struct{}

func (console) Write(p []byte) (int, error) {
	js.Global().Get("console").Call("log", string(p))
	return len(p), nil
}

type page struct {
	window   js.Value
	network  js.Value
	ctl      *netview.Controller
	sky      *canvas
	field    *constellation.Field
	lastTime float64
	log      *slog.Logger

	listeners []listener
	frame     js.Func
	frameID   js.Value
	done      chan struct{}
}

// listener is an event handler registered on a DOM target.
type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

func main() {
	log := slog.New(slog.NewTextHandler(console{}, nil))
	doc := js.Global().Get("document")

	p := &page{window: js.Global().Get("window"), log: log, done: make(chan struct{})}
	p.network = doc.Call("getElementById", networkID)
	if p.network.IsNull() {
		log.Warn("no network canvas", "id", networkID)
	} else {
		p.mountNetwork(graphFrom(p.network, log))
	}

	if el := doc.Call("getElementById", constellationID); !el.IsNull() {
		p.sky = newCanvas(el)
		w, h := p.viewport()
		p.sky.Reset(w, h, p.dpr())
		p.field = constellation.New(w, h, time.Now().UnixNano())
	}

	p.listen()
	p.requestFrame()
	<-p.done
	p.release()
	log.Info("page hidden, bindings released")
}

// graphFrom reads a JSON graph from the canvas's data-graph attribute,
// falling back to the built-in one.
func graphFrom(el js.Value, log *slog.Logger) *skillnet.Graph {
	src := el.Get("dataset").Get("graph")
	if src.IsUndefined() || src.String() == "" {
		return skillnet.DefaultGraph()
	}
	g, err := netfile.Parse([]byte(src.String()), netfile.FormatJSON)
	if err != nil {
		log.Error("data-graph rejected", "err", err)
		return skillnet.DefaultGraph()
	}
	return g
}

func (p *page) mountNetwork(g *skillnet.Graph) {
	w, h := p.viewport()
	p.ctl = netview.New(g, newCanvas(p.network), netview.Options{
		Viewport: skillnet.Viewport{Width: w, Height: h},
		Ease:     ease,
		Logger:   p.log,
	})
	cw, ch := p.canvasSize()
	p.ctl.Mount(cw, ch, p.dpr())
}

func (p *page) viewport() (float64, float64) {
	return p.window.Get("innerWidth").Float(), p.window.Get("innerHeight").Float()
}

func (p *page) dpr() float64 {
	v := p.window.Get("devicePixelRatio")
	if v.Type() != js.TypeNumber || v.Float() <= 0 {
		return 1
	}
	return v.Float()
}

// canvasSize is the laid-out size of the network canvas. Zero means the
// element has no layout yet and the controller falls back to the viewport.
func (p *page) canvasSize() (float64, float64) {
	rect := p.network.Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float()
}

// local converts a mouse event to canvas logical coordinates.
func (p *page) local(ev js.Value) (float64, float64) {
	rect := p.network.Call("getBoundingClientRect")
	return ev.Get("clientX").Float() - rect.Get("left").Float(),
		ev.Get("clientY").Float() - rect.Get("top").Float()
}

func (p *page) listen() {
	on := func(target js.Value, event string, fn func(ev js.Value)) {
		f := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			var ev js.Value
			if len(args) > 0 {
				ev = args[0]
			}
			fn(ev)
			return nil
		})
		target.Call("addEventListener", event, f)
		p.listeners = append(p.listeners, listener{target, event, f})
	}

	on(p.window, "resize", func(js.Value) { p.resize() })
	on(p.window, "load", func(js.Value) { p.resize() })
	on(p.window, "pagehide", func(js.Value) { p.teardown() })

	if p.ctl == nil {
		return
	}
	on(p.network, "mousemove", func(ev js.Value) { p.ctl.PointerMove(p.local(ev)) })
	on(p.network, "mouseleave", func(js.Value) { p.ctl.PointerLeave() })
	on(p.network, "click", func(ev js.Value) { p.ctl.Click(p.local(ev)) })
}

func (p *page) resize() {
	w, h := p.viewport()
	if p.ctl != nil {
		p.ctl.SetViewport(skillnet.Viewport{Width: w, Height: h})
		cw, ch := p.canvasSize()
		p.ctl.Resize(cw, ch, p.dpr())
	}
	if p.sky != nil {
		p.sky.Reset(w, h, p.dpr())
		p.field.Resize(w, h)
	}
}

// teardown removes every listener, stops the frame loop and closes the
// controller. It runs once, on pagehide.
func (p *page) teardown() {
	select {
	case <-p.done:
		return
	default:
	}
	p.window.Call("cancelAnimationFrame", p.frameID)
	for _, l := range p.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
	}
	if p.ctl != nil {
		p.ctl.Close()
	}
	// main releases the funcs once done is closed.
	close(p.done)
}

func (p *page) release() {
	for _, l := range p.listeners {
		l.fn.Release()
	}
	p.listeners = nil
	p.frame.Release()
}

func (p *page) requestFrame() {
	p.frame = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case <-p.done:
			return nil
		default:
		}
		now := args[0].Float()
		dt := time.Duration(0)
		if p.lastTime > 0 {
			dt = time.Duration((now - p.lastTime) * float64(time.Millisecond))
		}
		p.lastTime = now

		if p.ctl != nil {
			p.ctl.Frame(dt)
		}
		if p.field != nil {
			p.field.Advance(dt)
			p.sky.Clear()
			p.field.Draw(p.sky)
		}
		p.frameID = p.window.Call("requestAnimationFrame", p.frame)
		return nil
	})
	p.frameID = p.window.Call("requestAnimationFrame", p.frame)
}
