package main

import (
	"fmt"
	"os"
	"strings"
)

// readWordsFromFile reads a recovery phrase from path: the words separated
// by ASCII whitespace and nothing else.
func readWordsFromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recovery phrase file: %w", err)
	}
	return strings.Fields(string(data)), nil
}
