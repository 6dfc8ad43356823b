package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "econgov-portal",
	Short: "A CLI for managing the Economic Governance Portal services",
	Long:  `Economic Governance Portal serves indicator dashboards, public content and administrator maintenance actions...`,
}

func main() {

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'", err)
		os.Exit(1)
	}
}
