package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:          "pagecheck",
	Short:        "Browser checks for the demo app",
	Long:         "Pagecheck drives a headless browser against a running demo page and reports which expected elements and behaviors are present.",
	Version:      Version,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
