package commands

import "github.com/spf13/cobra"

func (c *CLI) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <value>",
		Short: "Split a stored value into library and icon name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Decode(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <library> <name>",
		Short: "Build the stored value for an icon of the catalog",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Encode(cmd.Context(), args[0], args[1])
		},
	}
}
