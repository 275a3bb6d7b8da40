package main

import (
	"fmt"
	"os"

	"artgie-web/internal/logger"
	"artgie-web/internal/product"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	verbose bool
	file    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Browse and check the Artgie sign catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.verbose {
				logger.Init("development")
				return
			}
			logger.Set(zap.NewNop())
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "Catalog YAML file (defaults to the built-in catalog)")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newCategoriesCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))

	return cmd
}

// openRepository loads the catalog named by --file, or the embedded one.
func openRepository(flags *rootFlags) (product.Repository, error) {
	if flags.file == "" {
		return product.NewStaticRepository()
	}
	data, err := os.ReadFile(flags.file)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return product.NewRepositoryFromYAML(data)
}
