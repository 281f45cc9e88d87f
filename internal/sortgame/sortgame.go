// Package sortgame decides the binary-string sorting game.
//
// Alice moves first. The string is consumed from both ends by a two-pointer
// process: each round cancels one block of stray 1s found from the left
// against stray 0s found from the right. An odd number of rounds means Alice
// wins, and the leftmost stray 1 paired with the rightmost stray 0 is reported
// as her move.
package sortgame

import (
	"errors"
	"fmt"
)

// ErrNotBinary is returned by Validate for symbols outside {0,1}.
var ErrNotBinary = errors.New("not a binary string")

// Player identifies a side of the game.
type Player int

const (
	Bob Player = iota
	Alice
)

func (p Player) String() string {
	if p == Alice {
		return "Alice"
	}
	return "Bob"
}

// Move is a swap of two 1-based positions.
type Move struct {
	I int
	J int
}

// Outcome is the result of Play.
type Outcome struct {
	Winner Player
	Rounds int
	// Witness is set only when Alice wins.
	Witness *Move
}

// Validate reports the first symbol that is not '0' or '1'.
func Validate(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return fmt.Errorf("%w: %q at position %d", ErrNotBinary, s[i], i+1)
		}
	}
	return nil
}

// IsSorted reports whether every '0' in s comes before every '1'.
func IsSorted(s string) bool {
	seenOne := false
	for i := 0; i < len(s); i++ {
		if s[i] == '1' {
			seenOne = true
		} else if seenOne {
			return false
		}
	}
	return true
}

// ApplySwap returns s with the 1-based positions m.I and m.J exchanged.
func ApplySwap(s string, m Move) string {
	b := []byte(s)
	b[m.I-1], b[m.J-1] = b[m.J-1], b[m.I-1]
	return string(b)
}

// Play runs the consumption process over s. s must be binary; symbols other
// than '1' are treated as '0'.
func Play(s string) Outcome {
	if IsSorted(s) {
		return Outcome{Winner: Bob}
	}

	n := len(s)
	l, r := 0, n-1
	left, right := n, -1
	rounds := 0

	for l < r {
		// 0s at the front and 1s at the back are already in place.
		for l < r && s[l] != '1' {
			l++
		}
		for l < r && s[r] == '1' {
			r--
		}
		if l >= r {
			break
		}

		// s[r] is a 0 here, so the scan below stops at r at the latest.
		cnt := 0
		for l < r && s[l] == '1' {
			cnt++
			left = min(left, l)
			l++
		}

		// r never walks below l; any surplus left over is simply dropped.
		for cnt > 0 && r >= l {
			if s[r] != '1' {
				cnt--
				right = max(right, r)
			}
			r--
		}
		rounds++
	}

	if rounds%2 == 0 {
		return Outcome{Winner: Bob, Rounds: rounds}
	}
	return Outcome{
		Winner:  Alice,
		Rounds:  rounds,
		Witness: &Move{I: left + 1, J: right + 1},
	}
}
