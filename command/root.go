// Package command wires the querybench CLI: connectivity checks,
// harness schema lifecycle and seeding against a configured backend.
package command

import (
	"fmt"
	"path/filepath"

	"github.com/querybench/querybench/constants"
	"github.com/querybench/querybench/logger"
	"github.com/querybench/querybench/store"
	"github.com/querybench/querybench/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configPath string
	seedCount  int
	noSave     bool

	config *store.Config

	commands = []*cobra.Command{}
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "querybench",
	Short: "CRUD, schema and query validation harness for MySQL-compatible databases",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !noSave && configPath != "not-set" {
			viper.Set(constants.ConfigFolder, filepath.Dir(configPath))
		}
		// logger uses CONFIG_FOLDER
		logger.Init()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}

		if ok := utils.IsValidSubcommand(commands, args[0]); !ok {
			return fmt.Errorf("'%s' is an invalid command. Use 'querybench --help' to display usage guide", args[0])
		}

		return nil
	},
}

// loadConfig decodes the --config file into the shared store config;
// every subcommand requires it.
func loadConfig() error {
	if configPath == "" || configPath == "not-set" {
		return fmt.Errorf("--config not passed")
	}

	config = &store.Config{}
	if err := utils.UnmarshalFile(configPath, config); err != nil {
		return err
	}
	return nil
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	commands = append(commands, checkCmd, setupCmd, teardownCmd, resetCmd, seedCmd, columnsCmd)
	RootCmd.AddCommand(commands...)

	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "", "not-set", "(Required) Connection config for the backend")
	RootCmd.PersistentFlags().BoolVarP(&noSave, "no-save", "", false, "(Optional) Flag to skip logging artifacts in file")
	seedCmd.Flags().IntVarP(&seedCount, "count", "", 10, "(Optional) Number of rows to seed per table")

	// Disable Cobra CLI's built-in usage and error handling
	RootCmd.SilenceUsage = true
	RootCmd.SilenceErrors = true
}
