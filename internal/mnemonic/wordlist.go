package mnemonic

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// WordCount4096 is the size of the canonical wordlist table.
const WordCount4096 = 4096

// WordBitCount is the number of bits of information encoded by a single word
// index. 4096 = 2^12, so each word carries exactly 12 bits.
const WordBitCount uint = 12

var (
	exactIndex  map[string]uint16
	prefixIndex map[string]uint16
)

func init() {
	exactIndex = make(map[string]uint16, WordCount4096)
	prefixIndex = make(map[string]uint16, WordCount4096)
	for i, w := range words {
		exactIndex[w] = uint16(i)
		if len(w) >= 4 {
			prefixIndex[w[:4]] = uint16(i)
		}
	}
}

// WordAt returns the canonical word for the given index, 0 <= index < WordCount4096.
func WordAt(index uint16) (string, error) {
	if int(index) >= WordCount4096 {
		return "", ErrIndexRange
	}
	return words[index], nil
}

// IndexOf looks up a word's index by exact match (case-insensitive, NFC-normalized)
// or by any prefix of at least 4 characters that uniquely identifies a word in the
// table. It returns ErrUnknownWord if the input matches nothing and no word, or
// matches more than one word ambiguously.
func IndexOf(word string) (uint16, error) {
	normalized := normalizeWord(word)

	if idx, ok := exactIndex[normalized]; ok {
		return idx, nil
	}

	if len(normalized) < 4 {
		return 0, ErrUnknownWord
	}

	idx, ok := prefixIndex[normalized[:4]]
	if !ok {
		return 0, ErrUnknownWord
	}
	if !strings.HasPrefix(words[idx], normalized) {
		return 0, ErrUnknownWord
	}
	return idx, nil
}

// normalizeWord lowercases and NFC-normalizes a word for lookup, trimming any
// surrounding Unicode whitespace the user may have typed.
func normalizeWord(word string) string {
	trimmed := strings.TrimSpace(word)
	return norm.NFC.String(strings.ToLower(trimmed))
}
