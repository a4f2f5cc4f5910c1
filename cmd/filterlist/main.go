package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "filterlist [file]",
	Short: "Pick one item from a grouped list",
	Long: "filterlist reads groups of items from a YAML document (a file or stdin), " +
		"lets you narrow them down with a filter and pick one, and prints the picked item id.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runPick,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "filterlist %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
