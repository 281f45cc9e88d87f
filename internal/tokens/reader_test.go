package tokens

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_Mixed(t *testing.T) {
	r := NewReader(strings.NewReader("2\n3  1 2 3\n\t4 1010\n"))

	n, err := r.Int()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	vals, err := r.Ints(4)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2, 3}, vals)

	n, err = r.Int()
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	w, err := r.Word()
	require.NoError(t, err)
	assert.Equal(t, "1010", w)
	assert.Equal(t, 7, r.Count())

	_, err = r.Word()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestReader_BadInt(t *testing.T) {
	r := NewReader(strings.NewReader("12 x3"))
	_, err := r.Int()
	require.NoError(t, err)

	_, err = r.Int()
	require.Error(t, err)
	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.Contains(t, err.Error(), "token 2")
}

func TestReader_IntsTruncated(t *testing.T) {
	r := NewReader(strings.NewReader("1 2"))
	_, err := r.Ints(3)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)

	_, err = NewReader(strings.NewReader("")).Ints(-1)
	assert.Error(t, err)
}

func TestReader_IntsHugeCount(t *testing.T) {
	r := NewReader(strings.NewReader("7 8"))
	vals, err := r.Ints(1 << 62)
	assert.Nil(t, vals)
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
	assert.Equal(t, 2, r.Count())
}
