package main

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ha1tch/skillnet/internal/progress"
	"github.com/ha1tch/skillnet/internal/ui"
	"github.com/ha1tch/skillnet/pkg/constellation"
	"github.com/ha1tch/skillnet/pkg/netdraw"
	"github.com/ha1tch/skillnet/pkg/netview"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

type renderOptions struct {
	sizes         []string
	dpr           float64
	format        string
	outDir        string
	background    string
	hover         string
	sel           string
	clicks        []string
	progress      float64
	constellation bool
	seed          int64
	quiet         bool
	stdout        bool
}

// renderJob is one output file.
type renderJob struct {
	width, height float64
	path          string
}

func renderCmd(a *app) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the network to PNG, SVG or a drawing-op dump",
		Example: `  skillnet render
  skillnet render --size 550 --size 300 --size 1100x700 --format svg
  skillnet render --select aws --dpr 2 -o out/
  skillnet render --click 275,215 --format ops --stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				o.format = a.cfg.Render.Format
			}
			if !cmd.Flags().Changed("out") {
				o.outDir = a.cfg.Render.OutputDir
			}
			if !cmd.Flags().Changed("background") {
				o.background = a.cfg.Render.Background
			}
			if !cmd.Flags().Changed("dpr") {
				o.dpr = a.cfg.Canvas.DPR
			}
			if len(o.sizes) == 0 {
				o.sizes = []string{fmt.Sprintf("%gx%g", a.cfg.Canvas.Width, a.cfg.Canvas.Height)}
			}
			return a.render(cmd.Context(), o)
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&o.sizes, "size", "s", nil, "Canvas size WxH or N (repeatable)")
	f.Float64Var(&o.dpr, "dpr", 1, "Device pixel ratio")
	f.StringVarP(&o.format, "format", "f", "png", "Output format: png, svg, ops")
	f.StringVarP(&o.outDir, "out", "o", ".", "Output directory")
	f.StringVar(&o.background, "background", "#0a0a0f", "Background colour")
	f.StringVar(&o.hover, "hover", "", "Node id to hover")
	f.StringVar(&o.sel, "select", "", "Node id to select")
	f.StringArrayVar(&o.clicks, "click", nil, "Click at X,Y in logical pixels (repeatable, applied in order)")
	f.Float64Var(&o.progress, "progress", 1, "Drawn highlight progress, 0..1")
	f.BoolVar(&o.constellation, "constellation", false, "Draw the particle background")
	f.Int64Var(&o.seed, "seed", 1, "Seed for the particle background")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "No progress output")
	f.BoolVar(&o.stdout, "stdout", false, "Write a single render to stdout")
	return cmd
}

func (a *app) render(ctx context.Context, o *renderOptions) error {
	switch o.format {
	case "png", "svg", "ops":
	default:
		return fmt.Errorf("unknown format %q (png, svg, ops)", o.format)
	}
	bg, err := netdraw.ParseColor(o.background)
	if err != nil {
		return err
	}
	if o.stdout && len(o.sizes) > 1 {
		return fmt.Errorf("--stdout takes a single --size")
	}

	g, err := a.graph()
	if err != nil {
		return err
	}
	for _, id := range []string{o.hover, o.sel} {
		if _, ok := g.Node(id); id != "" && !ok {
			return fmt.Errorf("unknown node %q", id)
		}
	}

	var jobs []renderJob
	for _, s := range o.sizes {
		w, h, err := parseSize(s)
		if err != nil {
			return err
		}
		name := fmt.Sprintf("%s-%gx%g", g.Name, w, h)
		if o.dpr != 1 {
			name += fmt.Sprintf("@%gx", o.dpr)
		}
		ext := o.format
		if ext == "ops" {
			ext = "txt"
		}
		jobs = append(jobs, renderJob{width: w, height: h, path: filepath.Join(o.outDir, name+"."+ext)})
	}
	if !o.stdout {
		if err := os.MkdirAll(o.outDir, 0o755); err != nil {
			return err
		}
	}

	rep := progress.NewReporter(o.quiet || o.stdout || len(jobs) == 1)
	rep.Start(len(jobs), "Rendering")
	defer rep.Finish()

	var mu sync.Mutex
	var written []string

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.NumCPU())
	for _, job := range jobs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := a.renderOne(g, job, bg, o)
			if err != nil {
				return fmt.Errorf("%s: %w", job.path, err)
			}
			if o.stdout {
				_, err = os.Stdout.Write(data)
				return err
			}
			if err := os.WriteFile(job.path, data, 0o644); err != nil {
				return err
			}
			a.log.Debug("rendered", "path", job.path, "bytes", len(data))
			rep.Done(filepath.Base(job.path))
			mu.Lock()
			written = append(written, job.path)
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	if !o.stdout && !o.quiet {
		for _, p := range written {
			fmt.Printf("%s %s\n", ui.StatusIcon(true), p)
		}
	}
	return nil
}

// encoder is a surface that can serialise what was drawn on it.
type encoder interface {
	netdraw.Surface
	encode() ([]byte, error)
}

type pngOut struct{ *netdraw.Raster }

func (p pngOut) encode() ([]byte, error) {
	var buf bytes.Buffer
	err := p.EncodePNG(&buf)
	return buf.Bytes(), err
}

type svgOut struct{ *netdraw.SVG }

func (s svgOut) encode() ([]byte, error) { return s.Bytes(), nil }

type opsOut struct{ *netdraw.Recorder }

func (r opsOut) encode() ([]byte, error) { return []byte(r.Dump()), nil }

// renderOne drives a fresh controller through the requested interaction
// and returns the encoded frame. Each call owns its layout, state and
// surface; only the graph is shared.
func (a *app) renderOne(g *skillnet.Graph, job renderJob, bg color.NRGBA, o *renderOptions) ([]byte, error) {
	var out encoder
	switch o.format {
	case "png":
		r := netdraw.NewRaster(job.width, job.height, o.dpr)
		r.Background = bg
		out = pngOut{r}
	case "svg":
		s := netdraw.NewSVG(job.width, job.height, o.dpr)
		s.Background = bg
		out = svgOut{s}
	default:
		out = opsOut{netdraw.NewRecorder(job.width, job.height, o.dpr)}
	}

	var surface netdraw.Surface = out
	if o.constellation {
		field := constellation.New(job.width, job.height, o.seed)
		surface = netdraw.WithBackdrop(out, field.Draw)
	}

	c := netview.New(g, surface, netview.Options{Logger: a.log, AnySize: true})
	c.Mount(job.width, job.height, o.dpr)
	defer c.Close()

	if o.hover != "" {
		n, _ := c.Layout().Node(o.hover)
		c.PointerMove(n.X, n.Y)
	}
	if o.sel != "" {
		n, _ := c.Layout().Node(o.sel)
		c.Click(n.X, n.Y)
	}
	for _, p := range o.clicks {
		x, y, err := parsePoint(p)
		if err != nil {
			return nil, err
		}
		c.Click(x, y)
	}

	if o.progress != 1 {
		sc := c.Scene()
		sc.Progress = o.progress
		netdraw.Render(surface, sc)
	}
	return out.encode()
}
