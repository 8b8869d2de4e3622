package cmd

import (
	"fmt"

	"github.com/blang/semver/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is the scenario-fmu release, written into generated descriptors.
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the scenario-fmu version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), Version)
	},
}

// checkVersion warns when v is not a semantic version; descriptors accept any string.
func checkVersion(v string) {
	if _, err := semver.ParseTolerant(v); err != nil {
		logrus.Warnf("tool version %q is not a semantic version: %v", v, err)
	}
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
