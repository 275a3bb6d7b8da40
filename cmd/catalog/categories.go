package main

import (
	"fmt"

	"artgie-web/internal/category"

	"github.com/spf13/cobra"
)

func newCategoriesCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := openRepository(rootFlags)
			if err != nil {
				return err
			}

			categories, err := category.NewService(repo).GetCategories(cmd.Context())
			if err != nil {
				return err
			}

			counts := make(map[string]int, len(categories)+1)
			labels := make([]string, 0, len(categories))
			for _, c := range categories {
				counts[c.Name] = c.ProductCount
				counts[category.All] += c.ProductCount
				labels = append(labels, c.Name)
			}

			out := cmd.OutOrStdout()
			for _, label := range category.WithAll(labels) {
				fmt.Fprintf(out, "%-20s %d\n", label, counts[label])
			}
			return nil
		},
	}
}
