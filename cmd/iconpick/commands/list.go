package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/iconpick/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List icons of a library as stored values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			library, _ := cmd.Flags().GetString("library")
			query, _ := cmd.Flags().GetString("query")
			pages, _ := cmd.Flags().GetInt("pages")
			all, _ := cmd.Flags().GetBool("all")

			// --all wins over --pages
			if all {
				pages = 0
			}

			return c.app.List(cmd.Context(), app.ListOptions{
				Library: library,
				Query:   query,
				Pages:   pages,
			})
		},
	}
	cmd.Flags().StringP("library", "l", "", "Library to list: lucide or duo (default from config)")
	cmd.Flags().StringP("query", "q", "", "Case-insensitive filter on names and keywords")
	cmd.Flags().IntP("pages", "p", 1, "Number of pages to load")
	cmd.Flags().BoolP("all", "a", false, "Load every matching icon")
	return cmd
}
