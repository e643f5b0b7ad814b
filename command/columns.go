package command

import (
	"fmt"

	"github.com/querybench/querybench/logger"
	"github.com/querybench/querybench/store"
	"github.com/spf13/cobra"
)

// columnsCmd prints the introspected column metadata of a table, in
// physical column order.
var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "print column metadata for a table",
	Args:  cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		table := args[0]
		return store.With(cmd.Context(), config, func(st *store.Store) error {
			exists, err := st.TableExists(cmd.Context(), table)
			if err != nil {
				return err
			}
			if !exists {
				return fmt.Errorf("table %q does not exist in database %q", table, config.Database)
			}

			columns, err := st.TableColumns(cmd.Context(), table)
			if err != nil {
				return err
			}
			logger.LogSchema(table, columns)
			return nil
		})
	},
}
