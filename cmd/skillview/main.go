// Command skillview is an interactive terminal viewer for the skills
// network. Hover and click nodes with the mouse; q quits.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/config"
	"github.com/ha1tch/skillnet/pkg/netfile"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

type options struct {
	graph        string
	ease         time.Duration
	pitch        float64
	seed         int64
	logPath      string
	noBoot       bool
	noWatch      bool
	noBackground bool
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "skillview: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cfg := config.Load()
	o := options{
		graph:        cfg.Viewer.Graph,
		ease:         time.Duration(cfg.Viewer.Ease()) * time.Millisecond,
		pitch:        defaultPitch,
		seed:         time.Now().UnixNano(),
		noBoot:       !cfg.Viewer.Boot,
		noWatch:      !cfg.Viewer.Watch,
		noBackground: !cfg.Viewer.Constellation,
	}
	cmd := &cobra.Command{
		Use:           "skillview [GRAPH]",
		Short:         "Explore the skills network in the terminal",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.graph = args[0]
			}
			return run(o)
		},
	}
	f := cmd.Flags()
	f.DurationVar(&o.ease, "ease", o.ease, "Highlight tween duration (0 for none)")
	f.Float64Var(&o.pitch, "pitch", o.pitch, "Logical pixels per half cell")
	f.Int64Var(&o.seed, "seed", o.seed, "Seed for the particle background")
	f.StringVar(&o.logPath, "log", "", "Write debug logs to this file")
	f.BoolVar(&o.noBoot, "no-boot", o.noBoot, "Skip the boot overlay")
	f.BoolVar(&o.noWatch, "no-watch", o.noWatch, "Do not reload the graph file on change")
	f.BoolVar(&o.noBackground, "no-background", o.noBackground, "Hide the particle background")
	return cmd
}

func run(o options) error {
	logger, closeLog, err := openLog(o.logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	g, err := netfile.LoadOrDefault(o.graph)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.Clear()

	v := newViewer(screen, g, o, logger)

	if o.graph != "" && !o.noWatch {
		stop, err := v.watch(o.graph)
		if err != nil {
			logger.Warn("watch disabled", "path", o.graph, "err", err)
		} else {
			defer stop()
		}
	}

	v.run()
	return nil
}

func openLog(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { f.Close() }, nil
}

// watch reloads the graph file on change. Reloads arrive on the event
// loop as interrupts so the controller is only touched from one goroutine.
func (v *viewer) watch(path string) (func(), error) {
	w, err := netfile.NewWatcher(path)
	if err != nil {
		return nil, err
	}
	w.OnChange(func(g *skillnet.Graph) {
		v.screen.PostEvent(tcell.NewEventInterrupt(g))
	})
	w.OnError(func(err error) {
		v.screen.PostEvent(tcell.NewEventInterrupt(err))
	})
	return w.Watch()
}
