package main

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/ui"
	"github.com/ha1tch/skillnet/pkg/netfile"
)

func validateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [GLOB...]",
		Short: "Check graph files for structural errors",
		Long: `Validate parses each matching graph file and checks it: unique ids,
known colours, edges between existing nodes, and a center that reaches
every other node. Patterns may use ** to match across directories.`,
		Example: `  skillnet validate graphs/**/*.yaml
  skillnet validate -g mine.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var paths []string
			if len(args) == 0 {
				if a.graphPath == "" {
					return fmt.Errorf("nothing to validate: pass a file, a pattern or --graph")
				}
				paths = []string{a.graphPath}
			}
			for _, pat := range args {
				matches, err := doublestar.FilepathGlob(pat)
				if err != nil {
					return fmt.Errorf("bad pattern %q: %w", pat, err)
				}
				if len(matches) == 0 {
					return fmt.Errorf("no files match %q", pat)
				}
				paths = append(paths, matches...)
			}

			failed := 0
			for _, p := range paths {
				g, err := netfile.Load(p)
				if err != nil {
					failed++
					fmt.Printf("%s %s\n    %s\n", ui.StatusIcon(false), p, ui.Bad.Sprint(err))
					continue
				}
				fmt.Printf("%s %s %s\n", ui.StatusIcon(true), p,
					ui.Subtle.Sprintf("(%d nodes, %d edges)", g.Len(), len(g.Edges())))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files invalid", failed, len(paths))
			}
			return nil
		},
	}
}
