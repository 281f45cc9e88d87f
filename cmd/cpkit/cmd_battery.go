package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"cpkit/cmd/cpkit/ui"
	"cpkit/internal/config"
	"cpkit/internal/history"
	"cpkit/internal/regression"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batteryParallel int
	batteryFailFast bool
	batteryRecord   bool
	batteryForce    bool
)

// batteryCmd groups regression battery commands
var batteryCmd = &cobra.Command{
	Use:   "battery",
	Short: "Replay recorded cases through the solvers",
}

var batteryRunCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Run a regression battery",
	Long: `Runs every case of a YAML battery and compares output token by token.

The battery path defaults to battery.path from config, then to
<workspace>/.cpkit/regression/battery.yaml. Exits non-zero if any case fails.

Example:
  cpkit battery run --parallel 4
  cpkit battery run cases.yaml --fail-fast --record`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBattery,
}

var batteryInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter battery with hand-traced cases",
	Args:  cobra.MaximumNArgs(1),
	RunE:  initBattery,
}

func init() {
	batteryRunCmd.Flags().IntVarP(&batteryParallel, "parallel", "p", 0, "Concurrent cases (default: battery.parallelism)")
	batteryRunCmd.Flags().BoolVar(&batteryFailFast, "fail-fast", false, "Run in order and stop at the first failure")
	batteryRunCmd.Flags().BoolVar(&batteryRecord, "record", false, "Record the run in the history database")
	batteryInitCmd.Flags().BoolVar(&batteryForce, "force", false, "Overwrite an existing battery")

	batteryCmd.AddCommand(batteryRunCmd)
	batteryCmd.AddCommand(batteryInitCmd)
}

// batteryPath resolves the battery file from args, config, or the workspace default.
func batteryPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	ws, err := resolveWorkspace()
	if err != nil {
		return "", err
	}
	if cfg.Battery.Path != "" {
		return config.ResolvePath(ws, cfg.Battery.Path), nil
	}
	return regression.DefaultBatteryPath(ws), nil
}

// runBattery executes a battery and renders the report
func runBattery(cmd *cobra.Command, args []string) error {
	path, err := batteryPath(args)
	if err != nil {
		return err
	}
	b, err := regression.LoadBattery(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no battery at %s (create one with `cpkit battery init`)", path)
		}
		return err
	}

	opts := regression.Options{
		Parallelism: cfg.Battery.Parallelism,
		FailFast:    cfg.Battery.FailFast,
		Timeout:     cfg.GetBatteryTimeout(),
	}
	if cmd.Flags().Changed("parallel") {
		opts.Parallelism = batteryParallel
	}
	if cmd.Flags().Changed("fail-fast") {
		opts.FailFast = batteryFailFast
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Running battery",
		zap.String("path", path),
		zap.Int("cases", len(b.Cases)),
		zap.Int("parallelism", opts.Parallelism),
		zap.Bool("fail_fast", opts.FailFast))

	start := time.Now()
	results, err := regression.RunBattery(ctx, b, registry, opts)
	if err != nil {
		return fmt.Errorf("battery aborted: %w", err)
	}
	elapsed := time.Since(start)
	passed, failed := regression.Summarize(results)

	styles := reportStyles()
	table := caseTable(filepath.Base(path))
	for _, r := range results {
		table.AddRow(r.CaseID, r.Problem, styles.Verdict(r.Success), strconv.FormatInt(r.DurationMs, 10), r.Error)
	}
	out := cmd.OutOrStdout()
	fmt.Fprint(out, table.Render(styles))
	fmt.Fprintf(out, "%d passed, %d failed, %d skipped in %s\n", passed, failed, len(b.Cases)-len(results), elapsed.Round(time.Millisecond))

	if batteryRecord || cfg.History.Enabled {
		if err := recordRun(ctx, path, start, elapsed, results); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	return nil
}

func recordRun(ctx context.Context, batteryFile string, start time.Time, elapsed time.Duration, results []regression.Result) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	passed, failed := regression.Summarize(results)
	run := history.Run{
		Battery:    batteryFile,
		StartedAt:  start,
		DurationMs: elapsed.Milliseconds(),
		Passed:     passed,
		Failed:     failed,
	}
	for _, r := range results {
		run.Cases = append(run.Cases, history.CaseResult{
			CaseID:     r.CaseID,
			Problem:    r.Problem,
			Success:    r.Success,
			DurationMs: r.DurationMs,
			Error:      r.Error,
		})
	}

	id, err := store.Record(ctx, run)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	if _, err := store.Prune(ctx, cfg.History.Keep); err != nil {
		logger.Warn("History prune failed", zap.Error(err))
	}
	logger.Info("Run recorded", zap.String("run_id", id), zap.String("db", store.Path()))
	return nil
}

func openHistory() (*history.Store, error) {
	ws, err := resolveWorkspace()
	if err != nil {
		return nil, err
	}
	return history.Open(config.ResolvePath(ws, cfg.History.DatabasePath))
}

// initBattery writes the starter battery
func initBattery(cmd *cobra.Command, args []string) error {
	path, err := batteryPath(args)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !batteryForce {
		return fmt.Errorf("battery already exists at %s (use --force to overwrite)", path)
	}
	if err := regression.StarterBattery().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Battery written to %s\n", path)
	return nil
}

// caseTable is the per-case layout shared by battery and history reports.
func caseTable(caption string) *ui.ReportTable {
	return ui.NewReportTable(caption, "Case", "Problem", "Result", "ms", "Detail").Limit(4, ui.DetailWidth)
}

func reportStyles() ui.Styles {
	if !cfg.UI.Color {
		return ui.PlainStyles()
	}
	return ui.NewStyles(ui.ThemeByName(cfg.UI.Theme))
}
