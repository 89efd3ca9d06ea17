package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/sealedphrase/mnemonikey"
)

func runRecover(args []string) error {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	name := fs.String("name", "", "display name used for the original PGP user ID")
	comment := fs.String("comment", "", "comment used for the original PGP user ID")
	email := fs.String("email", "", "email address used for the original PGP user ID")
	armorOut := fs.Bool("armor", true, "ASCII-armor the PGP output")
	includeAuth := fs.Bool("auth-subkey", false, "include an Ed25519 authentication subkey")
	includeSigning := fs.Bool("signing-subkey", false, "include a dedicated Ed25519 signing subkey")
	encrypted := fs.Bool("encrypted", false, "the recovery phrase is password-protected")
	inWordFile := fs.String("in-word-file", "", "file containing the recovery phrase (default: interactive prompt)")
	out := fs.String("out", "", "file to write the PGP private key to (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var words []string
	var err error
	if *inWordFile != "" {
		words, err = readWordsFromFile(*inWordFile)
	} else {
		words, err = readWordsInteractive()
	}
	if err != nil {
		return err
	}

	opts := &mnemonikey.KeyOptions{
		Name:                 *name,
		Comment:              *comment,
		Email:                *email,
		Armor:                *armorOut,
		IncludeAuthSubkey:    *includeAuth,
		IncludeSigningSubkey: *includeSigning,
	}

	var mnk *mnemonikey.Mnemonikey
	if *encrypted {
		password, passErr := readPassword("Enter the recovery phrase password: ")
		if passErr != nil {
			return passErr
		}
		mnk, err = mnemonikey.RecoverEncrypted(words, password, opts)
	} else {
		mnk, err = mnemonikey.Recover(words, opts)
	}
	if err != nil {
		return fmt.Errorf("failed to recover identity: %w", err)
	}
	defer mnk.Zero()

	var keyPassword []byte
	wantsKeyPassword, err := promptYesNo("Encrypt private key material with a password?")
	if err != nil {
		return err
	}
	if wantsKeyPassword {
		keyPassword, err = readPasswordTwice("Enter a password to protect the PGP private key: ")
		if err != nil {
			return err
		}
	}

	var output string
	if opts.Armor {
		output, err = mnk.EncodePGPArmor(keyPassword)
	} else {
		var raw []byte
		raw, err = mnk.EncodePGP(keyPassword)
		output = string(raw)
	}
	if err != nil {
		return fmt.Errorf("failed to encode PGP key: %w", err)
	}

	return writeOutput(*out, output)
}

func readPassword(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	return password, nil
}
