package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "drivenuts",
	Short: "A solver for the Drive Ya Nuts hexagon puzzle",
	Long: `drivenuts is a brute-force solver for the Drive Ya Nuts puzzle:
seven hexagonal pieces, one in the center and six around it, must be
arranged so that every pair of touching edges shows the same marking.`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
