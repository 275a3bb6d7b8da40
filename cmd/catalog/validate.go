package main

import (
	"errors"
	"fmt"
	"os"

	"artgie-web/internal/product"

	"github.com/spf13/cobra"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a catalog YAML file before shipping it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootFlags.file == "" {
				return errors.New("--file is required")
			}

			data, err := os.ReadFile(rootFlags.file)
			if err != nil {
				return fmt.Errorf("read catalog: %w", err)
			}

			catalog, err := product.ParseCatalog(data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d products in %d categories\n",
				rootFlags.file, len(catalog.Products), len(catalog.Categories))
			return nil
		},
	}
}
