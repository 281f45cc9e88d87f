package judge

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"cpkit/internal/logging"
	"cpkit/internal/tokens"
)

// Run reads the case count T from in and solves T cases with p, strictly in
// order. Verdicts already produced are flushed even when a later case fails.
func Run(p Problem, in io.Reader, out io.Writer) error {
	log := logging.Get(logging.CategoryJudge).With("problem", p.Name())
	start := time.Now()

	r := tokens.NewReader(in)
	w := bufio.NewWriter(out)

	t, err := r.Int()
	if err != nil {
		return fmt.Errorf("read case count: %w", err)
	}
	if t < 0 {
		return fmt.Errorf("negative case count %d", t)
	}
	log.Debug("running %d cases", t)

	for i := 1; i <= t; i++ {
		if err := p.Solve(r, w); err != nil {
			_ = w.Flush()
			log.Warn("case %d failed: %v", i, err)
			return fmt.Errorf("case %d: %w", i, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	log.Info("solved %d cases in %s (%d tokens)", t, time.Since(start), r.Count())
	return nil
}

// RunString runs p over input and returns everything written.
func RunString(p Problem, input string) (string, error) {
	var sb strings.Builder
	err := Run(p, strings.NewReader(input), &sb)
	return sb.String(), err
}
