package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/config"
	"github.com/ha1tch/skillnet/internal/ui"
	"github.com/ha1tch/skillnet/pkg/netfile"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

var version = "0.3.0"

// app carries what every command needs once flags are parsed.
type app struct {
	cfg       *config.Config
	log       *slog.Logger
	graphPath string
	verbose   bool
}

func rootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "skillnet",
		Short: "Render and inspect the interactive skills network",
		Long: ui.Brand.Sprint("skillnet") + ": render, inspect and exercise the skills network\n" +
			ui.Subtle.Sprint("Layout, hit-testing and highlighting, outside the browser"),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.cfg = config.Load()
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(a.log)
			if a.graphPath == "" {
				a.graphPath = a.cfg.Viewer.Graph
			}
		},
	}
	root.SetVersionTemplate("skillnet {{ .Version }}\n")
	root.PersistentFlags().StringVarP(&a.graphPath, "graph", "g", "", "Graph file (.json, .yaml); built-in graph when empty")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Debug logging on stderr")

	root.AddCommand(
		renderCmd(a),
		infoCmd(a),
		hitCmd(a),
		neighborsCmd(a),
		validateCmd(a),
		exportCmd(a),
		contactCmd(a),
		configCmd(a),
	)

	// Errors are printed once here rather than by cobra.
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\n\n%s", err, cmd.UsageString())
	})
	wrapRunE(root)
	return root
}

// wrapRunE prints a command's error in the house style before returning it.
func wrapRunE(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		wrapRunE(c)
	}
	if cmd.RunE == nil {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			ui.Bad.Fprintf(os.Stderr, "skillnet: %v\n", err)
		}
		return err
	}
}

func (a *app) graph() (*skillnet.Graph, error) {
	g, err := netfile.LoadOrDefault(a.graphPath)
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded", "name", g.Name, "nodes", g.Len(), "edges", len(g.Edges()))
	return g, nil
}

// parseSize reads "WxH" or a single number for a square canvas.
func parseSize(s string) (w, h float64, err error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	w, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	h = w
	if len(parts) == 2 {
		h, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid size %q", s)
		}
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("invalid size %q", s)
	}
	return w, h, nil
}

// parsePoint reads "X,Y".
func parsePoint(s string) (x, y float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid point %q (want X,Y)", s)
	}
	x, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q", s)
	}
	y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid point %q", s)
	}
	return x, y, nil
}
