package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/iconpick/internal/app"
)

func (c *CLI) newPickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick [value]",
		Short: "Choose an icon interactively and print its stored value",
		Long: "Open the interactive picker on the library of the current value.\n" +
			"The chosen value is printed on stdout; closing the picker prints the current value unchanged.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, _ := cmd.Flags().GetString("mode")

			current := ""
			if len(args) == 1 {
				current = args[0]
			}
			return c.app.Pick(cmd.Context(), current, app.PickOptions{Mode: mode})
		},
	}
	cmd.Flags().StringP("mode", "m", "auto", "Terminal mode: auto, tui, or linear")
	return cmd
}
