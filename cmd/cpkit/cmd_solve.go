package main

import (
	"fmt"
	"io"
	"os"

	"cpkit/internal/judge"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newSolveCmd exposes one problem as a subcommand reading stdin or --input.
func newSolveCmd(p judge.Problem) *cobra.Command {
	var inputPath string

	cmd := &cobra.Command{
		Use:   p.Name(),
		Short: p.Summary(),
		Long: fmt.Sprintf(`%s

Reads the case count T followed by T test cases from stdin (or --input)
and prints one verdict block per case to stdout.`, p.Summary()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if inputPath != "" && inputPath != "-" {
				f, err := os.Open(inputPath)
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			logger.Debug("Solving", zap.String("problem", p.Name()), zap.String("input", inputPath))
			return judge.Run(p, in, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Read input from file instead of stdin")
	return cmd
}
