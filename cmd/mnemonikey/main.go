// Command mnemonikey generates and recovers deterministic PGP identities
// backed by a short English recovery phrase.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "recover":
		err = runRecover(os.Args[2:])
	case "convert":
		err = runConvert(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, red("error: "+err.Error()))
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(bold("mnemonikey") + " - deterministic PGP identities from a recovery phrase")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mnemonikey generate [flags]   generate a new identity and recovery phrase")
	fmt.Println("  mnemonikey recover  [flags]   recover an identity from a recovery phrase")
	fmt.Println("  mnemonikey convert  [flags]   re-encode an existing phrase with or without a password")
}
