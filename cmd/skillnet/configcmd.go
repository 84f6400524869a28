package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ha1tch/skillnet/internal/config"
	"github.com/ha1tch/skillnet/internal/ui"
)

func configCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the settings file",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				ui.Subtle.Printf("# %s\n", config.Path())
				return toml.NewEncoder(os.Stdout).Encode(a.cfg)
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the default settings file if none exists",
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.EnsureExists(); err != nil {
					return err
				}
				fmt.Printf("%s %s\n", ui.StatusIcon(true), config.Path())
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file path",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Println(config.Path())
			},
		},
	)
	return cmd
}
