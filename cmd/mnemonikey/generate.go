package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/sealedphrase/mnemonikey"
)

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	name := fs.String("name", "", "display name for the PGP user ID")
	comment := fs.String("comment", "", "optional comment for the PGP user ID")
	email := fs.String("email", "", "email address for the PGP user ID")
	expiryDays := fs.Int("expires", 0, "number of days until the key expires (0 = never)")
	armorOut := fs.Bool("armor", true, "ASCII-armor the PGP output")
	includeAuth := fs.Bool("auth-subkey", false, "include an Ed25519 authentication subkey")
	includeSigning := fs.Bool("signing-subkey", false, "include a dedicated Ed25519 signing subkey")
	encryptPhrase := fs.Bool("encrypt", false, "protect the recovery phrase with a password")
	out := fs.String("out", "", "file to write the PGP private key to (default: stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seed, err := mnemonikey.GenerateSeed()
	if err != nil {
		return err
	}
	defer seed.Zero()

	opts := &mnemonikey.KeyOptions{
		Name:                 *name,
		Comment:              *comment,
		Email:                *email,
		Armor:                *armorOut,
		IncludeAuthSubkey:    *includeAuth,
		IncludeSigningSubkey: *includeSigning,
	}
	if *expiryDays > 0 {
		opts.Expiry = time.Now().Add(time.Duration(*expiryDays) * 24 * time.Hour)
	}

	mnk, err := mnemonikey.New(seed, time.Now(), opts)
	if err != nil {
		return fmt.Errorf("failed to generate identity: %w", err)
	}
	defer mnk.Zero()

	var words []string
	if *encryptPhrase {
		password, err := readPasswordTwice("Enter a password to protect the recovery phrase: ")
		if err != nil {
			return err
		}
		words, err = mnk.EncodeMnemonicEncrypted(password)
		if err != nil {
			return err
		}
	} else {
		words, err = mnk.EncodeMnemonic()
		if err != nil {
			return err
		}
	}

	fmt.Println(bold("Recovery phrase:"))
	fmt.Println(justifyTerminalWidth(2, joinWords(words)))
	fmt.Println()

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

func joinWords(words []string) string {
	out := ""
	for i, w := range words {
		if i > 0 {
			out += " "
		}
		out += w
	}
	return out
}

func readPasswordTwice(prompt string) ([]byte, error) {
	fmt.Print(prompt)
	first, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Print("Confirm password: ")
	second, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return nil, fmt.Errorf("failed to read password confirmation: %w", err)
	}

	if string(first) != string(second) {
		return nil, fmt.Errorf("passwords did not match")
	}
	return first, nil
}

func promptYesNo(prompt string) (bool, error) {
	fmt.Print(prompt + " [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	switch line {
	case "y\n", "Y\n", "yes\n":
		return true, nil
	}
	return false, nil
}

func writeOutput(path, content string) error {
	if path == "" {
		fmt.Println(content)
		return nil
	}
	return os.WriteFile(path, []byte(content), 0600)
}
