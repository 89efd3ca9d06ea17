package mnemonikey

import (
	"crypto/rand"

	"github.com/sealedphrase/mnemonikey/internal/mnemonic"
)

// SeedSize is the number of bytes of entropy a Seed holds.
const SeedSize = int(mnemonic.EntropyBitCount / 8)

// Seed holds the raw entropy a Mnemonikey's PGP keys are derived from. It is
// the only secret a recovery phrase needs to reconstruct; callers should
// call Zero once a Seed's derived keys have been encoded.
type Seed [SeedSize]byte

// NewSeed copies entropy into a new Seed. entropy must be exactly SeedSize
// bytes long.
func NewSeed(entropy []byte) (*Seed, error) {
	if len(entropy) != SeedSize {
		return nil, ErrInvalidSeedLength
	}
	var s Seed
	copy(s[:], entropy)
	return &s, nil
}

// GenerateSeed draws SeedSize bytes from a cryptographically secure random
// source.
func GenerateSeed() (*Seed, error) {
	var s Seed
	if _, err := rand.Read(s[:]); err != nil {
		return nil, ErrRandomSourceFailure
	}
	return &s, nil
}

// Bytes returns the seed's entropy as a byte slice. The caller must not
// modify the returned slice's contents beyond its own use of it.
func (s *Seed) Bytes() []byte {
	return s[:]
}

// Zero overwrites the seed's entropy with zero bytes.
func (s *Seed) Zero() {
	for i := range s {
		s[i] = 0
	}
}
