package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ha1tch/skillnet/pkg/choreo"
	"github.com/ha1tch/skillnet/pkg/constellation"
	"github.com/ha1tch/skillnet/pkg/netdraw"
	"github.com/ha1tch/skillnet/pkg/netview"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

const (
	defaultPitch  = 8.0
	frameInterval = 33 * time.Millisecond
	bootLineStep  = 650 * time.Millisecond
	titleText     = "Interactive Skills Network"
)

// The last line is the welcome line the overlay waits for.
var bootLines = []string{
	"[ OK ] Mounting skills network",
	"[ OK ] Loading nodes and edges",
	"[ OK ] Calibrating pointer input",
	"[ OK ] Starting render loop",
	"Welcome to the portfolio.",
}

var (
	styleTitle  = tcell.StyleDefault.Bold(true).Foreground(tcell.NewRGBColor(57, 255, 20))
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy).Bold(true)
	bootGreen   = color.NRGBA{R: 57, G: 255, B: 20, A: 255}
)

// tick asks the event loop to advance animations.
type tick struct{}

type viewer struct {
	screen tcell.Screen
	surf   *cells
	ctl    *netview.Controller
	field  *constellation.Field
	log    *slog.Logger
	opts   options

	start   time.Time
	last    time.Time
	boot    choreo.Boot
	buttons tcell.ButtonMask

	hideField bool

	status    string
	statusErr bool

	ticking atomic.Bool
	quit    chan struct{}
}

func newViewer(screen tcell.Screen, g *skillnet.Graph, o options, log *slog.Logger) *viewer {
	v := &viewer{
		screen: screen,
		surf:   newCells(o.pitch),
		log:    log,
		opts:   o,
		quit:   make(chan struct{}),
	}
	var s netdraw.Surface = v.surf
	if !o.noBackground {
		s = netdraw.WithBackdrop(v.surf, v.paintBackdrop)
	}
	v.ctl = netview.New(g, s, netview.Options{Ease: o.ease, Logger: log, AnySize: true})

	welcome := time.Duration(len(bootLines)-1) * bootLineStep
	v.boot = choreo.BootSchedule(fmt.Sprintf("%gs", welcome.Seconds()), "0.5s")
	if o.noBoot {
		v.boot = choreo.Boot{}
	}
	v.start = time.Now()
	v.last = v.start
	v.resize()
	return v
}

func (v *viewer) run() {
	go v.ticker()
	defer close(v.quit)
	defer v.ctl.Close()

	for {
		v.draw()
		v.screen.Show()
		v.ticking.Store(v.animating())

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			v.screen.Sync()
			v.resize()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case *tcell.EventInterrupt:
			v.handleInterrupt(ev.Data())
		}
	}
}

func (v *viewer) ticker() {
	t := time.NewTicker(frameInterval)
	defer t.Stop()
	for {
		select {
		case <-v.quit:
			return
		case <-t.C:
			if v.ticking.Load() {
				v.screen.PostEvent(tcell.NewEventInterrupt(tick{}))
			}
		}
	}
}

// resize fits the canvas between the title row and the status bar.
func (v *viewer) resize() {
	cols, rows := v.screen.Size()
	rows -= 2
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	w, h := v.surf.Grid(cols, rows)
	if v.field == nil && !v.opts.noBackground {
		v.field = constellation.New(w, h, v.opts.seed)
	} else if v.field != nil {
		v.field.Resize(w, h)
	}
	if v.ctl.Layout() == nil {
		v.ctl.Mount(w, h, 1)
	} else {
		v.ctl.Resize(w, h, 1)
	}
}

func (v *viewer) paintBackdrop(s netdraw.Surface) {
	if v.field != nil && !v.hideField {
		v.field.Draw(s)
	}
}

func (v *viewer) elapsed() time.Duration { return time.Since(v.start) }

// interactive reports whether the boot overlay has gone.
func (v *viewer) interactive() bool {
	return !v.boot.Visible(v.elapsed())
}

func (v *viewer) animating() bool {
	if (v.field != nil && !v.hideField) || v.ctl.Animating() {
		return true
	}
	return v.elapsed() < v.boot.Typing+choreo.TypingDuration(titleText)
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'b':
			v.hideField = !v.hideField
			v.ctl.Redraw()
		}
	}
	return false
}

func (v *viewer) handleMouse(ev *tcell.EventMouse) {
	if !v.interactive() {
		return
	}
	x, y, inside := v.toLogical(ev.Position())
	pressed := ev.Buttons()&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
	v.buttons = ev.Buttons()

	if !inside {
		v.ctl.PointerLeave()
		return
	}
	v.ctl.PointerMove(x, y)
	if pressed {
		v.ctl.Click(x, y)
	}
}

// toLogical maps a screen cell to the logical point at its center.
func (v *viewer) toLogical(col, row int) (x, y float64, inside bool) {
	_, rows := v.screen.Size()
	if row < 1 || row >= rows-1 || col < 0 {
		return 0, 0, false
	}
	p := v.surf.pitch
	return (float64(col) + 0.5) * p, (float64(row-1)*2 + 1) * p, true
}

func (v *viewer) handleInterrupt(data interface{}) {
	switch d := data.(type) {
	case tick:
		now := time.Now()
		dt := now.Sub(v.last)
		v.last = now
		tweening := v.ctl.Animating()
		v.ctl.Frame(dt)
		if v.field != nil && !v.hideField && v.field.Advance(dt) > 0 && !tweening {
			v.ctl.Redraw()
		}
	case *skillnet.Graph:
		v.ctl.SetGraph(d)
		v.setStatus(fmt.Sprintf("reloaded %s (%d nodes)", d.Name, d.Len()), false)
	case error:
		v.log.Warn("reload failed", "err", d)
		v.setStatus(d.Error(), true)
	}
}

func (v *viewer) setStatus(msg string, isErr bool) {
	v.status, v.statusErr = msg, isErr
}

func (v *viewer) draw() {
	v.screen.Clear()
	w, h := v.screen.Size()
	t := v.elapsed()

	typed := choreo.Typed(titleText, t-v.boot.Typing)
	drawText(v.screen, 1, 0, typed, styleTitle)
	if len(typed) < len(titleText) && t >= v.boot.Typing {
		drawText(v.screen, 1+runewidth.StringWidth(typed), 0, "▌", styleTitle)
	}

	v.surf.Flush(v.screen, 0, 1)
	v.drawStatus(w, h)

	if v.boot.Visible(t) {
		v.drawBoot(w, h, t)
	}
}

func (v *viewer) drawStatus(w, h int) {
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	st := v.ctl.State()
	line := fmt.Sprintf(" %s", st.Phase())
	if id := st.Selected(); id != "" {
		line += "  selected: " + nodeName(v.ctl.Graph(), id)
	} else if id := st.Hovered(); id != "" {
		line += "  hover: " + nodeName(v.ctl.Graph(), id)
	}
	drawText(v.screen, 0, h-1, line, styleStatus)

	right := "q quit  b background "
	style := styleStatus
	if v.status != "" {
		right = v.status + " "
		if v.statusErr {
			style = styleError
		}
	}
	drawText(v.screen, w-runewidth.StringWidth(right), h-1, right, style)
}

// drawBoot dims whatever is on screen towards the overlay colour and
// writes the boot lines on top.
func (v *viewer) drawBoot(w, h int, t time.Duration) {
	a := v.boot.Opacity(t)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, comb, st, _ := v.screen.GetContent(x, y)
			fg, bg, attr := st.Decompose()
			st = tcell.StyleDefault.
				Foreground(fade(fg, a)).
				Background(fade(bg, a)).
				Attributes(attr)
			v.screen.SetContent(x, y, r, comb, st)
		}
	}

	lineColor := netdraw.Blend(netdraw.Background, netdraw.WithAlpha(bootGreen, a))
	style := tcell.StyleDefault.Foreground(tcellColor(lineColor)).Background(fade(tcell.ColorBlack, a))
	top := h/2 - len(bootLines)/2
	for i, line := range bootLines {
		if t < time.Duration(i)*bootLineStep {
			break
		}
		drawText(v.screen, 2, top+i, "> "+line, style)
	}
}

// fade blends c towards the page background by a.
func fade(c tcell.Color, a float64) tcell.Color {
	if c == tcell.ColorDefault || !c.Valid() {
		return tcellColor(netdraw.Background)
	}
	r, g, b := c.RGB()
	under := color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}
	return tcellColor(netdraw.Blend(under, netdraw.WithAlpha(netdraw.Background, a)))
}

func nodeName(g *skillnet.Graph, id string) string {
	n, ok := g.Node(id)
	if !ok {
		return id
	}
	return oneLine(n.Label)
}

func oneLine(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '\n' {
			r = ' '
		}
		out = append(out, r)
	}
	return string(out)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		if w := runewidth.RuneWidth(r); w > 1 {
			x += w
		} else {
			x++
		}
	}
}
