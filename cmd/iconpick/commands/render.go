package commands

import "github.com/spf13/cobra"

func (c *CLI) newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [value]",
		Short: "Print the SVG markup of a stored value",
		Long: "Print the SVG markup of a stored value such as lucide:House.\n" +
			"An empty, malformed or stale value prints the placeholder glyph.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, _ := cmd.Flags().GetInt("size")

			value := ""
			if len(args) == 1 {
				value = args[0]
			}
			return c.app.Render(cmd.Context(), value, size)
		},
	}
	cmd.Flags().IntP("size", "s", 0, "Edge length in pixels (default from config)")
	return cmd
}
