package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/sitecheck"
)

var (
	checkURL        string
	checkConfigFile string
	checkHeaded     bool
	checkWindow     string
	checkList       bool
	checkTimeout    time.Duration
)

var checkCmd = &cobra.Command{
	Use:   "check <name>",
	Short: "Run a single check from the battery",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSingleCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkURL, "url", "", "target URL (default: built-in, or $PAGECHECK_URL)")
	checkCmd.Flags().StringVar(&checkConfigFile, "config", "", "path to a YAML config override file")
	checkCmd.Flags().BoolVar(&checkHeaded, "headed", false, "run the browser with a visible window")
	checkCmd.Flags().StringVar(&checkWindow, "window", "1280x800", "browser window size (WIDTHxHEIGHT)")
	checkCmd.Flags().BoolVar(&checkList, "list", false, "list available check names")
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 1*time.Minute, "check timeout")
	rootCmd.AddCommand(checkCmd)
}

func runSingleCheck(cmd *cobra.Command, args []string) error {
	if checkList {
		for _, name := range sitecheck.Names() {
			fmt.Println(name)
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("expected a check name, see --list")
	}
	name := args[0]
	if _, ok := sitecheck.Lookup(name); !ok {
		return fmt.Errorf("unknown check %q, see --list", name)
	}

	cfg, err := loadConfig(checkConfigFile, checkURL)
	if err != nil {
		return err
	}
	width, height, err := parseWindow(checkWindow)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	session, err := browser.Launch(ctx, browser.Options{
		Headless: !checkHeaded,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	result, err := sitecheck.RunOne(ctx, session, cfg, name)
	if err != nil {
		return err
	}
	return printResult(cmd, result)
}
