// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Console lines written by Run
const (
	PassedLine   = "All tests passed."
	FailedPrefix = "Test failed:"
)

// failNow unwinds a scenario after a fatal assertion
type failNow struct{}

// T records assertion failures for one scenario. It satisfies testify's
// assert.TestingT and require.TestingT.
type T struct {
	name     string
	failures []string
	logger   *slog.Logger
}

func (t *T) Errorf(format string, args ...any) {
	t.failures = append(t.failures, summarizeFailure(fmt.Sprintf(format, args...)))
}

// summarizeFailure reduces a testify failure report to a single line made
// of its Error and Messages sections. The trace and diff are dropped.
// Messages without testify sections are kept whole, with whitespace
// collapsed.
func summarizeFailure(msg string) string {
	var kept []string
	labelled, keep := false, false

	for _, line := range strings.Split(msg, "\n") {
		trimmed := strings.TrimLeft(line, "\t")
		if label, rest, ok := strings.Cut(trimmed, ":"); ok && isSectionLabel(label) &&
			strings.HasPrefix(strings.TrimLeft(rest, " "), "\t") {
			labelled = true
			keep = label == "Error" || label == "Messages"
			if keep {
				kept = append(kept, strings.TrimLeft(rest, " \t"))
			}
			continue
		}
		if strings.TrimSpace(line) == "Diff:" {
			keep = false
		}
		if keep {
			kept = append(kept, line)
		}
	}

	if !labelled {
		kept = []string{msg}
	}
	return strings.Join(strings.Fields(strings.Join(kept, " ")), " ")
}

// isSectionLabel matches testify labels such as "Error Trace" or "Messages"
func isSectionLabel(s string) bool {
	if s == "" || s[0] == ' ' {
		return false
	}
	for _, r := range s {
		if r != ' ' && (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// FailNow stops the scenario; Run recovers it
func (t *T) FailNow() {
	panic(failNow{})
}

func (t *T) Helper() {}

// Name is the running scenario's name
func (t *T) Name() string {
	return t.name
}

// Logger is the logger scenarios hand to the code under test
func (t *T) Logger() *slog.Logger {
	if t.logger == nil {
		return slog.Default()
	}
	return t.logger
}

// Failed reports whether any assertion failed so far
func (t *T) Failed() bool {
	return len(t.failures) > 0
}

// Result is the outcome of one scenario
type Result struct {
	Name     string
	Failures []string
}

func (r Result) Passed() bool {
	return len(r.Failures) == 0
}

// Report collects every scenario's result, in run order
type Report struct {
	Results []Result
}

// OK reports whether every scenario passed
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Failed returns the results of failing scenarios
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.Passed() {
			failed = append(failed, res)
		}
	}
	return failed
}

type runConfig struct {
	logger *slog.Logger
}

type RunOption func(*runConfig)

// WithRunLogger sets the logger used by Run and handed to scenarios
func WithRunLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) { c.logger = l }
}

// Run executes scenarios in order. Each runs in its own failure boundary,
// so a failing scenario never stops the ones after it. Run writes one
// "Test failed:" line per failing scenario, or "All tests passed." when
// none failed, and always returns normally.
func Run(ctx context.Context, out io.Writer, scenarios []Scenario, opts ...RunOption) Report {
	cfg := runConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var report Report
	for _, s := range scenarios {
		res := runScenario(ctx, s, cfg.logger)
		report.Results = append(report.Results, res)

		if res.Passed() {
			cfg.logger.Debug("scenario passed", "scenario", s.Name)
			continue
		}
		cfg.logger.Warn("scenario failed", "scenario", s.Name, "failures", len(res.Failures))
		fmt.Fprintf(out, "%s %s: %s\n", FailedPrefix, s.Name, strings.Join(res.Failures, "; "))
	}

	if report.OK() {
		fmt.Fprintln(out, PassedLine)
	}
	return report
}

func runScenario(ctx context.Context, s Scenario, logger *slog.Logger) (res Result) {
	t := &T{name: s.Name, logger: logger}

	defer func() {
		if p := recover(); p != nil {
			if _, ok := p.(failNow); !ok {
				t.Errorf("panic: %v", p)
			}
		}
		res = Result{Name: s.Name, Failures: t.failures}
	}()

	s.Run(ctx, t)
	return
}
