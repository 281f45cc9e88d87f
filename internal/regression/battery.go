// Package regression provides a lightweight regression battery harness.
// Batteries are YAML-defined case suites that replay recorded inputs through
// the registered solvers and compare the verdicts against expected output.
package regression

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"cpkit/internal/judge"
	"cpkit/internal/logging"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Battery is a collection of regression cases.
type Battery struct {
	Version int    `yaml:"version"`
	Cases   []Case `yaml:"cases"`
}

// Case is a single regression case: a full input stream (including T) for
// one problem and the output it must produce.
type Case struct {
	ID         string `yaml:"id"`
	Problem    string `yaml:"problem"`
	Input      string `yaml:"input"`
	Expect     string `yaml:"expect"`
	TimeoutSec int    `yaml:"timeout_sec,omitempty"`
}

// Result captures execution outcome for a case.
type Result struct {
	CaseID     string
	Problem    string
	Success    bool
	Output     string
	Error      string
	DurationMs int64
}

// Options controls RunBattery.
type Options struct {
	// Parallelism bounds concurrent cases; values below 1 mean 1.
	Parallelism int
	// FailFast runs cases in order and stops at the first failure.
	FailFast bool
	// Timeout applies to cases without timeout_sec.
	Timeout time.Duration
}

// LoadBattery reads a YAML battery file from disk.
func LoadBattery(path string) (*Battery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Battery
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse battery YAML: %w", err)
	}
	return &b, nil
}

// Save writes the battery as YAML, creating parent directories.
func (b *Battery) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create battery directory: %w", err)
	}
	data, err := yaml.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal battery: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// RunBattery executes every case against reg and returns results in case
// order. With FailFast the run stops after the first failing case.
func RunBattery(ctx context.Context, b *Battery, reg *judge.Registry, opts Options) ([]Result, error) {
	if b == nil || len(b.Cases) == 0 {
		return nil, nil
	}
	log := logging.Get(logging.CategoryBattery)

	if opts.FailFast {
		results := make([]Result, 0, len(b.Cases))
		for _, c := range b.Cases {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			res := runCase(ctx, c, reg, opts.Timeout)
			results = append(results, res)
			if !res.Success {
				log.Warn("case %s failed, stopping: %s", c.ID, res.Error)
				break
			}
		}
		passed, failed := Summarize(results)
		log.Info("battery finished: %d passed, %d failed", passed, failed)
		return results, nil
	}

	results := make([]Result, len(b.Cases))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.Parallelism))
	for i, c := range b.Cases {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(gctx, c, reg, opts.Timeout)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The group context is canceled once Wait returns, so check the caller's.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	passed, failed := Summarize(results)
	log.Info("battery finished: %d passed, %d failed", passed, failed)
	return results, nil
}

// runCase solves one case in its own goroutine so a timeout can abandon it.
func runCase(ctx context.Context, c Case, reg *judge.Registry, fallback time.Duration) Result {
	start := time.Now()
	res := Result{CaseID: c.ID, Problem: c.Problem}

	p, err := reg.Lookup(strings.TrimSpace(c.Problem))
	if err != nil {
		res.Error = err.Error()
		return finish(res, start)
	}

	timeout := time.Duration(c.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = fallback
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type solved struct {
		out string
		err error
	}
	done := make(chan solved, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- solved{err: fmt.Errorf("solver panicked: %v", r)}
			}
		}()
		out, err := judge.RunString(p, c.Input)
		done <- solved{out, err}
	}()

	select {
	case s := <-done:
		res.Output = s.out
		switch {
		case s.err != nil:
			res.Error = s.err.Error()
		case !SameTokens(s.out, c.Expect):
			res.Error = fmt.Sprintf("output mismatch: want %q, got %q", strings.Join(strings.Fields(c.Expect), " "), strings.Join(strings.Fields(s.out), " "))
		default:
			res.Success = true
		}
	case <-tctx.Done():
		if errors.Is(tctx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			res.Error = fmt.Sprintf("timed out after %s", timeout)
		} else {
			res.Error = tctx.Err().Error()
		}
	}
	return finish(res, start)
}

func finish(res Result, start time.Time) Result {
	res.DurationMs = time.Since(start).Milliseconds()
	return res
}

// SameTokens compares two outputs token by token, ignoring whitespace layout.
func SameTokens(a, b string) bool {
	return slices.Equal(strings.Fields(a), strings.Fields(b))
}

// Summarize counts passed and failed results.
func Summarize(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// DefaultBatteryPath returns the canonical battery path for a workspace.
func DefaultBatteryPath(workspace string) string {
	return filepath.Join(workspace, ".cpkit", "regression", "battery.yaml")
}
