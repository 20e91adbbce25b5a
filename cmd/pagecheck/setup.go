package main

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"pagecheck/pkg/config"
	"pagecheck/pkg/logging"
)

// loadConfig layers the configuration sources: YAML file, then the
// PAGECHECK_URL environment variable, then the --url flag.
func loadConfig(configFile, urlFlag string) (config.Config, error) {
	var cfg config.Config
	if configFile != "" {
		var err error
		cfg, err = config.LoadFile(configFile)
		if err != nil {
			return cfg, err
		}
	}
	cfg = config.FromEnv(cfg)
	if urlFlag != "" {
		cfg.URL = urlFlag
	}
	return cfg, nil
}

// parseWindow converts "1280x800" into width and height.
func parseWindow(window string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(window), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid window size %q, expected WIDTHxHEIGHT", window)
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window width %q", parts[0])
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid window height %q", parts[1])
	}
	return w, h, nil
}

// newLogger returns a file logger when a log directory is configured,
// otherwise a no-op logger.
func newLogger(logDir string) (*zap.Logger, error) {
	if logDir == "" {
		return zap.NewNop(), nil
	}
	return logging.NewLogger(logDir)
}
