package main

import (
	"fmt"
	"os"

	"cpkit/internal/config"
	"cpkit/internal/judge"
	"cpkit/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	workspace  string
	configPath string

	// Resolved at startup
	cfg      = config.DefaultConfig()
	logger   = zap.NewNop()
	registry = judge.Default()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cpkit",
	Short: "cpkit - contest solvers with a regression battery",
	Long: `cpkit bundles three contest decision procedures behind one CLI.

Each solver reads T test cases from stdin (or --input) and prints one verdict
block per case to stdout:

  cpkit coloring       Array Coloring (YES/NO)
  cpkit mex            MEX Reordering (YES/NO)
  cpkit sorting-game   Sorting Game (Bob, or Alice with a witness swap)

Recorded cases can be replayed with "cpkit battery run".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Sync()
	},
}

// problemsCmd lists the registered solvers
var problemsCmd = &cobra.Command{
	Use:   "problems",
	Short: "List available problems",
	Args:  cobra.NoArgs,
	RunE:  listProblems,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/.cpkit/config.yaml)")

	for _, name := range registry.Names() {
		p, _ := registry.Lookup(name)
		rootCmd.AddCommand(newSolveCmd(p))
	}

	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(batteryCmd)
	rootCmd.AddCommand(historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads config and builds the logger.
func setup() error {
	ws, err := resolveWorkspace()
	if err != nil {
		return err
	}

	path := configPath
	if path == "" {
		path = config.DefaultConfigPath(ws)
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	c.Logging.File = config.ResolvePath(ws, c.Logging.File)
	if err := logging.Initialize(c.Logging, verbose); err != nil {
		return err
	}

	cfg = c
	logger = logging.Base()
	logger.Debug("Configuration loaded",
		zap.String("path", path),
		zap.String("workspace", ws),
		zap.String("log_level", c.Logging.Level))
	return nil
}

// resolveWorkspace returns --workspace or the current directory.
func resolveWorkspace() (string, error) {
	if workspace != "" {
		return workspace, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to resolve workspace: %w", err)
	}
	return cwd, nil
}

// listProblems prints each registered problem with its summary
func listProblems(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, name := range registry.Names() {
		p, err := registry.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-14s %s\n", name, p.Summary())
	}
	return nil
}
