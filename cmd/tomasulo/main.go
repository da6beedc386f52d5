// Command tomasulo runs or steps through a Tomasulo dynamic-scheduling
// trace, or generates a random one.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logger = logrus.StandardLogger()

var rootCmd = &cobra.Command{
	Use:   "tomasulo",
	Short: "Cycle-accurate Tomasulo dynamic-scheduling simulator",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
