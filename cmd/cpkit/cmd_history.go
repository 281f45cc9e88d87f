package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cpkit/cmd/cpkit/ui"

	"github.com/spf13/cobra"
)

var historyLimit int

// historyCmd lists recorded battery runs
var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded battery runs",
	Long: `Lists the most recent battery runs from the history database.
With a run id, lists that run's cases instead.

Example:
  cpkit history --limit 5
  cpkit history 3f2c0a6e-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: showHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of runs to show")
}

func showHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	styles := reportStyles()
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		cases, err := store.Cases(ctx, args[0])
		if err != nil {
			return err
		}
		if len(cases) == 0 {
			fmt.Fprintf(out, "No cases recorded for run %s\n", args[0])
			return nil
		}
		table := caseTable("Run " + args[0])
		for _, c := range cases {
			table.AddRow(c.CaseID, c.Problem, styles.Verdict(c.Success), strconv.FormatInt(c.DurationMs, 10), c.Error)
		}
		fmt.Fprint(out, table.Render(styles))
		return nil
	}

	runs, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded")
		return nil
	}

	table := ui.NewReportTable("History", "Run", "Started", "Battery", "Passed", "Failed", "ms")
	for _, r := range runs {
		table.AddRow(
			r.ID,
			r.StartedAt.Format(time.DateTime),
			r.Battery,
			strconv.Itoa(r.Passed),
			strconv.Itoa(r.Failed),
			strconv.FormatInt(r.DurationMs, 10),
		)
	}
	fmt.Fprint(out, table.Render(styles))
	return nil
}
