package command

import (
	"github.com/querybench/querybench/logger"
	"github.com/querybench/querybench/store"
	"github.com/spf13/cobra"
)

// checkCmd validates that the configured backend is reachable and can
// serve a trivial read on the configured database.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check command",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	Run: func(cmd *cobra.Command, args []string) {
		err := store.With(cmd.Context(), config, func(st *store.Store) error {
			_, err := st.Query(cmd.Context(), "SELECT 1")
			return err
		})
		logger.LogConnectionStatus(err)
	},
}
