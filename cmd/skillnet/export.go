package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/ui"
	"github.com/ha1tch/skillnet/pkg/netfile"
)

func exportCmd(a *app) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the current graph to a .json, .yaml or .dot file",
		Example: `  skillnet export skills.yaml
  skillnet export -g skills.yaml skills.json
  skillnet export skills.dot && neato -n -Tpng skills.dot > skills.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := netfile.FormatOf(path); err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", path)
			}
			g, err := a.graph()
			if err != nil {
				return err
			}
			if err := netfile.Save(path, g); err != nil {
				return err
			}
			fmt.Printf("%s %s\n", ui.StatusIcon(true), path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	return cmd
}
