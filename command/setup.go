package command

import (
	"github.com/querybench/querybench/fixtures"
	"github.com/querybench/querybench/store"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "create the harness schema on the configured backend",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return store.With(cmd.Context(), config, func(st *store.Store) error {
			return fixtures.Setup(cmd.Context(), st)
		})
	},
}

var teardownCmd = &cobra.Command{
	Use:   "teardown",
	Short: "drop the harness schema",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return store.With(cmd.Context(), config, func(st *store.Store) error {
			return fixtures.Teardown(cmd.Context(), st)
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "truncate all harness tables",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return store.With(cmd.Context(), config, func(st *store.Store) error {
			return fixtures.Reset(cmd.Context(), st)
		})
	},
}
