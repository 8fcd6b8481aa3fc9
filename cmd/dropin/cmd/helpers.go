package cmd

import (
	"fmt"
	"os"

	"github.com/dropin-dev/dropin/internal/notice"
	"github.com/dropin-dev/dropin/pkg/dropin"
)

// newClient builds a dropin client from the global flags.
func newClient() (*dropin.Client, error) {
	client, err := dropin.New(dropin.Options{
		ConfigPath:   configPath,
		SettingsPath: settingsPath,
		Sink:         notice.NewLogger("dropin", debug),
	})
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", configPath, err)
	}
	return client, nil
}

// reportResults prints per-deployment outcomes and returns an error when
// any deployment failed.
func reportResults(verb string, results []dropin.DeploymentResult) error {
	failed := 0
	for _, r := range results {
		switch {
		case r.Result.Failed():
			failed++
			errorf("%s: %s (%s)", r.Name, r.Result.Message, r.Result.Kind)
		case r.Result.Skipped():
			detail("%s  %s (already current)", "skipped", r.Name)
		default:
			info("  %s  %s", verb, r.Name)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d deployment(s) failed", failed)
	}
	return nil
}

// info prints a line unless quiet mode is active.
func info(format string, args ...any) {
	if !quiet {
		fmt.Printf(format+"\n", args...)
	}
}

// detail prints a line only in debug mode.
func detail(format string, args ...any) {
	if debug {
		fmt.Printf("  "+format+"\n", args...)
	}
}

// errorf prints an error message to stderr.
func errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
