package main

import (
	"flag"
	"fmt"

	"github.com/sealedphrase/mnemonikey"
)

// runConvert decodes a recovery phrase (plaintext or password-protected) and
// re-encodes its seed and creation offset under a different protection
// mode, without touching any derived PGP key material.
func runConvert(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	inWordFile := fs.String("in-word-file", "", "file containing the recovery phrase to convert (required)")
	decryptPhrase := fs.Bool("decrypt-phrase", false, "the input recovery phrase is password-protected")
	encryptPhrase := fs.Bool("encrypt-phrase", false, "protect the output recovery phrase with a password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inWordFile == "" {
		return fmt.Errorf("--in-word-file is required")
	}

	words, err := readWordsFromFile(*inWordFile)
	if err != nil {
		return err
	}

	var oldPassword []byte
	if *decryptPhrase {
		oldPassword, err = readPassword("Enter the recovery phrase password: ")
		if err != nil {
			return err
		}
	}

	var newPassword []byte
	if *encryptPhrase {
		newPassword, err = readPasswordTwice("Enter a password to protect the new recovery phrase: ")
		if err != nil {
			return err
		}
	}

	newWords, err := mnemonikey.Convert(words, oldPassword, newPassword)
	if err != nil {
		return fmt.Errorf("failed to convert recovery phrase: %w", err)
	}

	fmt.Println(bold("New recovery phrase:"))
	fmt.Println(justifyTerminalWidth(2, joinWords(newWords)))
	return nil
}
