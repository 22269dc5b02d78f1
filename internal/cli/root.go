// Package cli implements the Mugshot command-line interface using Cobra.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mugshot",
	Short: "Mugshot — a coffee-shop visit journal",
	Long: `Mugshot keeps a journal of your cafe visits: what you drank, where,
and what you thought of it — and turns that history into streaks,
stats, and unlockable badges.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. Called from main.go.
func Execute(version string) {
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
