package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"pagecheck/pkg/check"
)

// discardStdout silences PrintResult inside f.
func discardStdout(f func()) {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	defer func() {
		_ = w.Close()
		os.Stdout = old
		_, _ = io.Copy(io.Discard, r)
	}()
	f()
}

func TestReportOutcome(t *testing.T) {
	cmd := &cobra.Command{}

	passing := check.NewReport()
	passing.Add("card-presence", check.Result{Name: "card-presence", OK: true})
	if err := reportOutcome(cmd, passing); err != nil {
		t.Fatalf("passing report: %v", err)
	}

	failing := check.NewReport()
	failing.Add("card-presence", check.Result{Name: "card-presence", OK: true})
	failing.Add("readability", check.Result{Name: "readability", OK: false})
	err := reportOutcome(cmd, failing)
	if !errors.Is(err, ErrCheckFailed) {
		t.Fatalf("failing report err = %v, want ErrCheckFailed", err)
	}
	if !cmd.SilenceErrors {
		t.Error("failing report should silence the duplicate error line")
	}
}

func TestPrintResultOutcome(t *testing.T) {
	cmd := &cobra.Command{}

	var okErr, failErr error
	discardStdout(func() {
		okErr = printResult(cmd, check.Result{Name: "login", OK: true})
		failErr = printResult(cmd, check.Result{Name: "login", OK: false, Message: "no indicator"})
	})

	if okErr != nil {
		t.Fatalf("passing result: %v", okErr)
	}
	if !errors.Is(failErr, ErrCheckFailed) {
		t.Fatalf("failing result err = %v, want ErrCheckFailed", failErr)
	}
	if !cmd.SilenceErrors {
		t.Error("failing result should silence the duplicate error line")
	}
}

func TestResolveWait(t *testing.T) {
	tests := []struct {
		name       string
		flagSet    bool
		flag       time.Duration
		configured time.Duration
		want       time.Duration
	}{
		{"flag wins when set", true, 2 * time.Second, 7 * time.Second, 2 * time.Second},
		{"config wins when flag untouched", false, 3 * time.Second, 7 * time.Second, 7 * time.Second},
		{"flag default when unconfigured", false, 3 * time.Second, 0, 3 * time.Second},
	}

	for _, tt := range tests {
		if got := resolveWait(tt.flagSet, tt.flag, tt.configured); got != tt.want {
			t.Errorf("%s: resolveWait = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveWait_FromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("wait_timeout: 7s\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path, "http://localhost:3000/login")
	if err != nil {
		t.Fatal(err)
	}
	if got := resolveWait(false, 3*time.Second, cfg.WaitTimeout); got != 7*time.Second {
		t.Errorf("wait = %v, want 7s", got)
	}
}
