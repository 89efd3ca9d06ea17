package mnemonic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWordlistSize(t *testing.T) {
	require.Len(t, words, WordCount4096)
}

func TestWordlistUniquePrefixes(t *testing.T) {
	seen := make(map[string]bool)
	for _, w := range words {
		require.GreaterOrEqual(t, len(w), 3)
		require.LessOrEqual(t, len(w), 8)
		if len(w) >= 4 {
			pfx := w[:4]
			require.False(t, seen[pfx], "duplicate 4-char prefix %q from word %q", pfx, w)
			seen[pfx] = true
		}
	}
}

func TestIndexOfExactMatch(t *testing.T) {
	w, err := WordAt(42)
	require.NoError(t, err)

	idx, err := IndexOf(w)
	require.NoError(t, err)
	require.EqualValues(t, 42, idx)
}

func TestIndexOfCaseInsensitive(t *testing.T) {
	w, err := WordAt(7)
	require.NoError(t, err)

	idx, err := IndexOf(w)
	require.NoError(t, err)
	idxUpper, err := IndexOf(upper(w))
	require.NoError(t, err)
	require.Equal(t, idx, idxUpper)
}

func TestIndexOfUniquePrefix(t *testing.T) {
	w, err := WordAt(100)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(w), 4)

	idx, err := IndexOf(w[:4])
	require.NoError(t, err)
	require.EqualValues(t, 100, idx)
}

func TestIndexOfUnknownWord(t *testing.T) {
	_, err := IndexOf("zzzznotaword")
	require.ErrorIs(t, err, ErrUnknownWord)
}

func TestIndexOfShortPrefixRejected(t *testing.T) {
	_, err := IndexOf("zzq")
	require.ErrorIs(t, err, ErrUnknownWord)
}

func upper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'z' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
