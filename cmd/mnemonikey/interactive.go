package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/sealedphrase/mnemonikey"
)

// errInteractiveEntryAborted is returned when the user cancels interactive
// recovery-phrase entry with Ctrl+C or Ctrl+D.
var errInteractiveEntryAborted = errors.New("recovery phrase entry cancelled")

// readWordsInteractive prompts for a recovery phrase one word at a time on
// a raw terminal, validating each word against the wordlist as it is typed.
// Backspace on an empty word, or the left arrow, steps back to correct the
// previous word. Used by recover when --in-word-file is not given, matching
// the interactive entry mode named alongside it.
func readWordsInteractive() ([]string, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to enter raw terminal mode: %w", err)
	}
	defer term.Restore(fd, oldState)

	fmt.Print(underline("Enter your recovery phrase") + "\r\n")
	fmt.Print(faint(justifyOptionDescription(
		"Type each word, then press space or enter to confirm it. Backspace on "+
			"an empty word, or the left arrow, goes back a word. Ctrl+C cancels.",
	)) + "\r\n\r\n")

	words := make([]string, 0, mnemonikey.MnemonicSize)
	current := make([]byte, 0, 16)
	reader := bufio.NewReader(os.Stdin)

	redraw := func() {
		fmt.Print(saveCursor + eraseLineForward)
		fmt.Print(magenta(fmt.Sprintf("%2d/%d ", len(words)+1, mnemonikey.MnemonicSize)))
		fmt.Print(cyan("word: "))
		switch {
		case len(current) == 0:
		case mnemonikey.IsValidMnemonicWord(string(current)):
			fmt.Print(green(string(current)))
		default:
			fmt.Print(red(string(current)))
		}
		fmt.Print(loadCursor)
	}

	// stepBack undoes the last confirmed word, moving the cursor up to its
	// line so the prompt can be redrawn in place.
	stepBack := func() bool {
		if len(words) == 0 {
			return false
		}
		current = append(current[:0], words[len(words)-1]...)
		words = words[:len(words)-1]
		fmt.Print(previousLine)
		return true
	}

	redraw()
	for len(words) < mnemonikey.MnemonicSize {
		b, err := reader.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("failed to read recovery phrase: %w", err)
		}

		switch b {
		case keyCodeControlC, keyCodeControlD:
			fmt.Print("\r\n")
			return nil, errInteractiveEntryAborted

		case escapeCode[0]:
			seq, peekErr := reader.Peek(2)
			if peekErr == nil && len(seq) == 2 && seq[0] == '[' && seq[1] == keyCodeLeftArrow {
				reader.Discard(2)
				if len(current) > 0 {
					current = current[:0]
				} else {
					stepBack()
				}
				redraw()
			}

		case deleteCode[0], '\b':
			fmt.Print(backspaceCode)
			if len(current) > 0 {
				current = current[:len(current)-1]
			} else {
				stepBack()
			}
			redraw()

		case ' ', '\r', '\n':
			if len(current) == 0 {
				continue
			}
			word := string(current)
			if !mnemonikey.IsValidMnemonicWord(word) {
				redraw()
				continue
			}
			words = append(words, word)
			current = current[:0]
			fmt.Print("\r\n")
			if len(words) < mnemonikey.MnemonicSize {
				redraw()
			}

		default:
			if b >= 0x20 && b < 0x7F {
				current = append(current, b)
				redraw()
			}
		}
	}

	fmt.Print("\r\n" + blue("Recovery phrase entered.") + "\r\n")
	return words, nil
}
