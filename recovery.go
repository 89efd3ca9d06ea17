package mnemonikey

import (
	"fmt"
	"time"

	"github.com/sealedphrase/mnemonikey/internal/mnemonic"
)

// ErrInvalidChecksum is returned when decoding a mnemonic fails due to a
// checksum mismatch, indicating either a corrupted phrase or (for encrypted
// phrases) a wrong password.
var ErrInvalidChecksum = mnemonic.ErrChecksumMismatch

// ErrInvalidWordCount is returned when decoding a recovery phrase whose word
// count is not MnemonicSize.
var ErrInvalidWordCount = mnemonic.ErrWordCount

// Recover decodes a seed and creation offset from a plaintext recovery
// phrase and re-derives its child PGP keys.
//
// opts.Name, opts.Comment and opts.Email must match what was originally used
// to generate the key, otherwise the recovered key carries a different user
// ID and self-certification. The fingerprints depend only on the seed and
// creation time.
func Recover(words []string, opts *KeyOptions) (*Mnemonikey, error) {
	seed, creation, err := DecodeMnemonic(words)
	if err != nil {
		return nil, err
	}
	mnk, err := New(seed, creation, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to recover key from decoded mnemonic: %w", err)
	}
	return mnk, nil
}

// RecoverEncrypted decodes a seed and creation offset from a
// password-encrypted recovery phrase and re-derives its child PGP keys.
func RecoverEncrypted(words []string, password []byte, opts *KeyOptions) (*Mnemonikey, error) {
	seed, creation, err := DecodeMnemonicEncrypted(words, password)
	if err != nil {
		return nil, err
	}
	mnk, err := New(seed, creation, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to recover key from decoded mnemonic: %w", err)
	}
	return mnk, nil
}

// DecodeMnemonic decodes a plaintext recovery phrase into the embedded Seed
// and key creation timestamp.
func DecodeMnemonic(words []string) (seed *Seed, creation time.Time, err error) {
	entropy, offset, err := mnemonic.Decode(words)
	if err != nil {
		return nil, time.Time{}, err
	}
	seed, err = NewSeed(entropy)
	if err != nil {
		return nil, time.Time{}, err
	}
	return seed, mnemonic.DecodeCreationOffset(offset), nil
}

// DecodeMnemonicEncrypted decodes a password-encrypted recovery phrase into
// the embedded Seed and key creation timestamp.
func DecodeMnemonicEncrypted(words []string, password []byte) (seed *Seed, creation time.Time, err error) {
	entropy, offset, err := mnemonic.DecodeEncrypted(words, password)
	if err != nil {
		return nil, time.Time{}, err
	}
	seed, err = NewSeed(entropy)
	if err != nil {
		return nil, time.Time{}, err
	}
	return seed, mnemonic.DecodeCreationOffset(offset), nil
}

// Convert decodes a recovery phrase and re-encodes its seed and creation
// offset under a different protection mode, without deriving any PGP key
// material. oldPassword is nil if words is a plaintext phrase; newPassword
// is nil to produce a plaintext result.
//
// This is the library entry point for the convert operation; the CLI's
// convert subcommand is a thin wrapper around it.
func Convert(words []string, oldPassword, newPassword []byte) ([]string, error) {
	var entropy []byte
	var offset uint64
	var err error
	if oldPassword == nil {
		entropy, offset, err = mnemonic.Decode(words)
	} else {
		entropy, offset, err = mnemonic.DecodeEncrypted(words, oldPassword)
	}
	if err != nil {
		return nil, err
	}
	defer zeroBytes(entropy)

	if newPassword == nil {
		return mnemonic.Encode(entropy, offset)
	}
	return mnemonic.EncodeEncrypted(entropy, offset, newPassword)
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
