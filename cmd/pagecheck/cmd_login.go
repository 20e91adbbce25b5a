package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"pagecheck/pkg/browser"
	"pagecheck/pkg/logincheck"
)

var (
	loginURL        string
	loginConfigFile string
	loginUser       string
	loginPassword   string
	loginHeaded     bool
	loginWait       time.Duration
	loginTimeout    time.Duration
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exercise the login form and report the outcome",
	Args:  cobra.NoArgs,
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginURL, "url", "", "login page URL")
	loginCmd.Flags().StringVar(&loginConfigFile, "config", "", "path to a YAML config override file")
	loginCmd.Flags().StringVar(&loginUser, "username", "", "username to submit")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password to submit")
	loginCmd.Flags().BoolVar(&loginHeaded, "headed", false, "run the browser with a visible window")
	loginCmd.Flags().DurationVar(&loginWait, "wait", 3*time.Second, "how long to wait for a success or error indicator")
	loginCmd.Flags().DurationVar(&loginTimeout, "timeout", 1*time.Minute, "overall flow timeout")
	_ = loginCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(loginCmd)
}

// resolveWait prefers an explicit --wait over the configured timeout.
func resolveWait(flagSet bool, flag, configured time.Duration) time.Duration {
	if flagSet || configured <= 0 {
		return flag
	}
	return configured
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(loginConfigFile, loginURL)
	if err != nil {
		return err
	}
	wait := resolveWait(cmd.Flags().Changed("wait"), loginWait, cfg.WaitTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), loginTimeout)
	defer cancel()

	session, err := browser.Launch(ctx, browser.Options{Headless: !loginHeaded})
	if err != nil {
		return err
	}
	defer session.Close()

	c := &logincheck.Check{
		Driver:      session,
		URL:         loginURL,
		Username:    loginUser,
		Password:    loginPassword,
		WaitTimeout: wait,
	}
	result, err := c.Run(ctx)
	if err != nil {
		return err
	}
	return printResult(cmd, result)
}
