package mnemonikey

import (
	"time"

	"github.com/sealedphrase/mnemonikey/internal/mnemonic"
)

// VersionLatest is the latest known mnemonikey phrase version. Phrases
// encoded with a version number higher than this will fail to decode.
const VersionLatest = mnemonic.VersionEncrypted

// MnemonicSize is the number of words a recovery phrase is split into.
const MnemonicSize = mnemonic.WordCount

// EntropyBitCount is the number of bits of entropy in the seed used to
// derive PGP keys.
const EntropyBitCount = mnemonic.EntropyBitCount

// EpochIncrement is the granularity available for the creation date of keys
// generated by mnemonikey: whole days.
const EpochIncrement = 24 * time.Hour

// EpochStart is the instant after which key creation times are encoded in
// recovery phrases.
var EpochStart = mnemonic.Epoch

// MaxCreationTime is the farthest point in the future that a recovery
// phrase can represent a key creation timestamp for.
var MaxCreationTime = mnemonic.DecodeCreationOffset(mnemonic.MaxCreationOffset)

// IsValidMnemonicWord reports whether word is recognized by the wordlist,
// either as an exact (case-insensitive) match or as a prefix that uniquely
// identifies exactly one entry.
func IsValidMnemonicWord(word string) bool {
	_, err := mnemonic.IndexOf(word)
	return err == nil
}
