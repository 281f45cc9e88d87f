// Package tokens reads whitespace-delimited contest input.
package tokens

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrUnexpectedEOF is returned when the input ends before a requested token.
var ErrUnexpectedEOF = errors.New("unexpected end of input")

const maxTokenSize = 16 << 20

// Reader yields whitespace-separated tokens in order.
type Reader struct {
	sc    *bufio.Scanner
	count int
}

// NewReader wraps r. Tokens up to 16 MiB are accepted.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(bufio.ScanWords)
	return &Reader{sc: sc}
}

// Word returns the next token.
func (r *Reader) Word() (string, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return "", fmt.Errorf("read token %d: %w", r.count+1, err)
		}
		return "", ErrUnexpectedEOF
	}
	r.count++
	return r.sc.Text(), nil
}

// Int returns the next token parsed as a base-10 integer.
func (r *Reader) Int() (int, error) {
	w, err := r.Word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("token %d: %w", r.count, err)
	}
	return v, nil
}

// maxPrealloc caps the capacity Ints reserves up front.
const maxPrealloc = 1 << 16

// Ints reads exactly n integers.
func (r *Reader) Ints(n int) ([]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative count %d", n)
	}
	// n comes from untrusted input; grow as tokens arrive.
	out := make([]int, 0, min(n, maxPrealloc))
	for len(out) < n {
		v, err := r.Int()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Count is the number of tokens consumed so far.
func (r *Reader) Count() int {
	return r.count
}
