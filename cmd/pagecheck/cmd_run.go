package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/output"
	"pagecheck/pkg/sitecheck"
)

var (
	runURL        string
	runConfigFile string
	runHeaded     bool
	runWindow     string
	runJSON       bool
	runSelect     string
	runLogDir     string
	runTimeout    time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full check battery and print the report",
	Args:  cobra.NoArgs,
	RunE:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&runURL, "url", "", "target URL (default: built-in, or $PAGECHECK_URL)")
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "path to a YAML config override file")
	runCmd.Flags().BoolVar(&runHeaded, "headed", false, "run the browser with a visible window")
	runCmd.Flags().StringVar(&runWindow, "window", "1280x800", "browser window size (WIDTHxHEIGHT)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the report as JSON")
	runCmd.Flags().StringVar(&runSelect, "select", "", "print only this path of the JSON report (e.g. overall.ok)")
	runCmd.Flags().StringVar(&runLogDir, "log-dir", "", "write a rotating JSON log under this directory")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 2*time.Minute, "overall battery timeout")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(runConfigFile, runURL)
	if err != nil {
		return err
	}
	logger, err := newLogger(runLogDir)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	width, height, err := parseWindow(runWindow)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	session, err := browser.Launch(ctx, browser.Options{
		Headless: !runHeaded,
		Width:    width,
		Height:   height,
	})
	if err != nil {
		logger.Error("browser launch failed", zap.Error(err))
		return err
	}
	defer session.Close()

	start := time.Now()
	report, err := sitecheck.RunAll(ctx, session, cfg)
	if err != nil {
		logger.Error("battery aborted", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return err
	}
	logger.Info("battery finished",
		zap.Bool("ok", report.OK()),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case runSelect != "":
		js, err := output.ReportJSON(report)
		if err != nil {
			return err
		}
		fmt.Println(gjson.Get(js, runSelect).String())
	case runJSON:
		js, err := output.ReportJSON(report)
		if err != nil {
			return err
		}
		fmt.Println(js)
	default:
		output.PrintReport(report)
	}

	return reportOutcome(cmd, report)
}
