package main

import (
	"errors"

	"github.com/spf13/cobra"

	"pagecheck/pkg/check"
	"pagecheck/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
// Returning it from RunE (instead of calling os.Exit) lets deferred
// cleanup run — the browser session closes and logs flush — before
// rootCmd.Execute() turns it into exit code 1.
var ErrCheckFailed = errors.New("check failed")

// printResult outputs a single result and converts a failure into
// ErrCheckFailed. The result is already on screen, so the error itself
// is silenced.
func printResult(cmd *cobra.Command, result check.Result) error {
	output.PrintResult(result)
	if !result.OK {
		cmd.SilenceErrors = true
		return ErrCheckFailed
	}
	return nil
}

// reportOutcome converts a failing report into ErrCheckFailed after the
// report has been printed.
func reportOutcome(cmd *cobra.Command, report *check.Report) error {
	if !report.OK() {
		cmd.SilenceErrors = true
		return ErrCheckFailed
	}
	return nil
}
