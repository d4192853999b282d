// Package main is the entry point for the campaign API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campaign-api",
	Short: "Campaign API server",
	Long:  `Campaign API serves persistent D&D 5e campaign world maps, chunk generation, and rules data over HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
