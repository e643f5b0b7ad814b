package command

import (
	"fmt"

	"github.com/querybench/querybench/fixtures"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "populate the harness tables with generated rows",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if seedCount <= 0 {
			return fmt.Errorf("--count must be positive, got %d", seedCount)
		}
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return fixtures.Seed(cmd.Context(), config, seedCount)
	},
}
