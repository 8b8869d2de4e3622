package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/scenario-fmu/scenario-fmu/fmu/archive"
)

var (
	logLevel   string // Log verbosity level
	configPath string // Optional YAML defaults file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "scenario-fmu",
	Short:         "Package scenario time series as FMI 2.0 Co-Simulation FMUs",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := applyOverrides(cmd, configPath); err != nil {
			return err
		}
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q", logLevel)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// exitCode maps a command error to a process status. A missing shared library is a
// reported precondition failure (2); everything else is 1.
func exitCode(err error) int {
	if errors.Is(err, archive.ErrBinaryNotFound) {
		return 2
	}
	return 1
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Errorf("error: %v", err)
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML defaults file")
}
