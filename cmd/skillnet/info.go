package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/ui"
	"github.com/ha1tch/skillnet/pkg/netdraw"
	"github.com/ha1tch/skillnet/pkg/skillnet"
)

func infoCmd(a *app) *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "info",
		Short: "List nodes with their degree and laid-out position",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			w, h, err := parseSize(size)
			if err != nil {
				return err
			}
			l := skillnet.ComputeLayout(g, w, h)

			ui.Banner(g.Name)
			fmt.Printf("  %d nodes, %d edges, center %s, scale %.3f\n\n",
				g.Len(), len(g.Edges()), ui.Info.Sprint(g.Center()), l.Scale)

			var rows [][]string
			for _, n := range l.Nodes {
				rows = append(rows, []string{
					swatch(n.Color) + " " + n.ID,
					oneLine(n.Label),
					n.Category,
					fmt.Sprintf("%.1f", n.Size),
					fmt.Sprintf("%.1f,%.1f", n.X, n.Y),
					fmt.Sprint(g.Degree(n.ID)),
				})
			}
			ui.Table([]string{"ID", "LABEL", "CATEGORY", "SIZE", "POS", "DEGREE"}, rows)
			return nil
		},
	}
	cmd.Flags().StringVarP(&size, "size", "s", "550", "Canvas size WxH or N")
	return cmd
}

func hitCmd(a *app) *cobra.Command {
	var size string
	cmd := &cobra.Command{
		Use:   "hit X Y",
		Short: "Show which node a pointer at (X, Y) would hit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parsePoint(args[0] + "," + args[1])
			if err != nil {
				return err
			}
			g, err := a.graph()
			if err != nil {
				return err
			}
			w, h, err := parseSize(size)
			if err != nil {
				return err
			}
			l := skillnet.ComputeLayout(g, w, h)

			n, ok := l.HitTest(x, y)
			if !ok {
				fmt.Printf("%s no node at %.1f,%.1f\n", ui.StatusIcon(false), x, y)
				return nil
			}
			fmt.Printf("%s %s %s\n", ui.StatusIcon(true), ui.Brand.Sprint(n.ID), ui.Subtle.Sprint(oneLine(n.Label)))

			cands := skillnet.Candidates(l.Nodes, x, y)
			if len(cands) > 1 {
				fmt.Println()
				var rows [][]string
				for i, c := range cands {
					rows = append(rows, []string{
						fmt.Sprint(i + 1),
						c.Node.ID,
						fmt.Sprintf("%.2f", c.Distance),
						fmt.Sprintf("%.1f", c.Node.Size),
					})
				}
				ui.Table([]string{"#", "ID", "DIST", "SIZE"}, rows)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&size, "size", "s", "550", "Canvas size WxH or N")
	return cmd
}

func neighborsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "neighbors ID",
		Aliases: []string{"nb"},
		Short:   "List the nodes an activated node would highlight",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.graph()
			if err != nil {
				return err
			}
			id := args[0]
			if _, ok := g.Node(id); !ok {
				return fmt.Errorf("unknown node %q", id)
			}
			nb := g.NeighborsOf(id)
			ids := make([]string, 0, len(nb))
			for n := range nb {
				ids = append(ids, n)
			}
			sort.Strings(ids)
			for _, n := range ids {
				spec, _ := g.Node(n)
				fmt.Printf("  %s %-12s %s\n", swatch(spec.Color), n, ui.Subtle.Sprint(oneLine(spec.Label)))
			}
			return nil
		},
	}
}

func swatch(hex string) string {
	c, err := netdraw.ParseColor(hex)
	if err != nil {
		return ui.Subtle.Sprint("?")
	}
	return ui.Swatch(c.R, c.G, c.B)
}

func oneLine(label string) string {
	return strings.ReplaceAll(label, "\n", " ")
}
