// Package gamedata holds the commands that round-trip, normalize, compare and inspect game data files.
package gamedata

import "github.com/spf13/cobra"

func Apply(rootCmd *cobra.Command) {
	rootCmd.AddCommand(roundtripCmd)
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(familiesCmd)
}
