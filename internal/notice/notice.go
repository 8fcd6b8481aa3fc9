// Package notice surfaces reconciler outcomes to the operator. It is
// purely presentational: no retry or escalation logic lives here, and
// any host-appropriate sink (stderr, structured logger, UI banner) can
// stand in for the default.
package notice

import "fmt"

// Sink consumes diagnostic events. Debug lines are only emitted when
// the sink was built with debugging enabled; warnings are always
// delivered.
type Sink interface {
	Debug(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
}

// Warning is the operator-facing payload for a failed deployment:
// the directory involved plus a generic remediation hint.
type Warning struct {
	Dir         string
	Remediation string
}

// NewWarning builds a Warning for dir with the stock remediation text.
func NewWarning(dir string) Warning {
	return Warning{
		Dir:         dir,
		Remediation: "check that the directory exists and is writable by this process",
	}
}

func (w Warning) String() string {
	return fmt.Sprintf("cannot deploy into %s: %s", w.Dir, w.Remediation)
}

// Nop discards everything.
type Nop struct{}

// Debug does nothing.
func (Nop) Debug(string, map[string]any) {}

// Warn does nothing.
func (Nop) Warn(string, map[string]any) {}
