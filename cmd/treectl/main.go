package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "treectl",
	Short: "Inspect comment trees offline",
	Long: `treectl builds the same comment tree the server renders,
from a JSON dump of flat comment records.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(newTreeCmd())
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
