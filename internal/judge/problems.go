package judge

import (
	"fmt"
	"io"

	"cpkit/internal/coloring"
	"cpkit/internal/mex"
	"cpkit/internal/sortgame"
	"cpkit/internal/tokens"
)

// Coloring is "Array Coloring": n, then n integers; prints YES or NO.
type Coloring struct{}

func (Coloring) Name() string { return "coloring" }

func (Coloring) Summary() string {
	return "Does the position-parity coloring stay consistent after sorting?"
}

func (Coloring) Solve(r *tokens.Reader, w io.Writer) error {
	values, err := readSequence(r)
	if err != nil {
		return err
	}
	return writeYesNo(w, coloring.Consistent(values))
}

// Mex is "MEX Reordering": n, then n integers; prints YES or NO.
type Mex struct{}

func (Mex) Name() string { return "mex" }

func (Mex) Summary() string {
	return "Does every prefix/suffix split have distinct prefix-scan MEX values?"
}

func (Mex) Solve(r *tokens.Reader, w io.Writer) error {
	values, err := readSequence(r)
	if err != nil {
		return err
	}
	return writeYesNo(w, mex.Distinct(values))
}

// SortingGame is "Sorting Game": n, then a binary string of length n.
// Prints Bob, or Alice followed by the move size 2 and the swap positions.
type SortingGame struct{}

func (SortingGame) Name() string { return "sorting-game" }

func (SortingGame) Summary() string {
	return "Who wins the binary-string sorting game, and with which swap?"
}

func (SortingGame) Solve(r *tokens.Reader, w io.Writer) error {
	n, err := r.Int()
	if err != nil {
		return fmt.Errorf("read n: %w", err)
	}
	s, err := r.Word()
	if err != nil {
		return fmt.Errorf("read string: %w", err)
	}
	if len(s) != n {
		return fmt.Errorf("%w: declared %d, got %d", ErrLengthMismatch, n, len(s))
	}
	if err := sortgame.Validate(s); err != nil {
		return err
	}

	out := sortgame.Play(s)
	if out.Winner == sortgame.Bob {
		_, err = fmt.Fprintln(w, out.Winner)
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n2\n%d %d\n", out.Winner, out.Witness.I, out.Witness.J)
	return err
}

func readSequence(r *tokens.Reader) ([]int, error) {
	n, err := r.Int()
	if err != nil {
		return nil, fmt.Errorf("read n: %w", err)
	}
	if n < 1 {
		return nil, fmt.Errorf("n must be positive, got %d", n)
	}
	values, err := r.Ints(n)
	if err != nil {
		return nil, fmt.Errorf("read %d values: %w", n, err)
	}
	return values, nil
}

func writeYesNo(w io.Writer, ok bool) error {
	verdict := "NO"
	if ok {
		verdict = "YES"
	}
	_, err := fmt.Fprintln(w, verdict)
	return err
}
