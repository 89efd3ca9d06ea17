package mnemonikey

import (
	"bytes"
	"fmt"
	"time"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"

	"github.com/sealedphrase/mnemonikey/internal/mnemonic"
	"github.com/sealedphrase/mnemonikey/internal/pgp"
)

// SubkeyType represents a flavor of subkey: encryption, authentication, or signing.
type SubkeyType string

const (
	SubkeyTypeEncryption     SubkeyType = "encryption"
	SubkeyTypeAuthentication SubkeyType = "authentication"
	SubkeyTypeSigning        SubkeyType = "signing"
)

// Mnemonikey represents a deterministically generated set of PGP keys. It
// contains a master certification key, a mandatory encryption subkey, and
// optional authentication and signing subkeys, all derived from a 16-byte
// Seed plus a key creation time.
type Mnemonikey struct {
	pgpKeySet       *pgp.KeySet
	seed            *Seed
	keyCreationTime time.Time
}

// New constructs a Mnemonikey from a seed.
//
// The key creation timestamp is hashed when computing PGP key fingerprints
// and so is critical to deterministic regeneration. This function rounds
// the creation time down to the most recent EpochIncrement boundary, so it
// can be encoded into a recovery mnemonic.
//
// opts.Name and opts.Email are optional but recommended to help identify
// the key later.
func New(seed *Seed, creation time.Time, opts *KeyOptions) (*Mnemonikey, error) {
	if opts == nil {
		opts = new(KeyOptions)
	}
	if !opts.Expiry.IsZero() && creation.After(opts.Expiry) {
		return nil, ErrExpiryTooEarly
	}
	if creation.After(MaxCreationTime) {
		return nil, ErrCreationTooLate
	}
	if creation.Before(EpochStart) {
		return nil, ErrCreationTooEarly
	}

	creationOffset, err := mnemonic.EncodeCreationOffset(creation)
	if err != nil {
		return nil, ErrCreationTooLate
	}
	creation = mnemonic.DecodeCreationOffset(creationOffset)

	pgpKeySet, err := derivePGPKeySet(seed.Bytes(), creation, creationOffset, opts)
	if err != nil {
		return nil, err
	}

	mnk := &Mnemonikey{
		seed:            seed,
		keyCreationTime: creation,
		pgpKeySet:       pgpKeySet,
	}
	return mnk, nil
}

func derivePGPKeySet(seed []byte, creation time.Time, creationOffset uint64, opts *KeyOptions) (*pgp.KeySet, error) {
	return pgp.DeriveKeySet(seed, creation, creationOffset, opts.UserID(), opts.Expiry, pgp.SubkeyOptions{
		IncludeAuthSubkey:    opts.IncludeAuthSubkey,
		IncludeSigningSubkey: opts.IncludeSigningSubkey,
	})
}

// CreatedAt returns the key creation date, rounded down to an
// EpochIncrement boundary after EpochStart.
func (mnk *Mnemonikey) CreatedAt() time.Time {
	return mnk.keyCreationTime
}

// FingerprintV4 returns the version-4 fingerprint of the master key.
func (mnk *Mnemonikey) FingerprintV4() []byte {
	fp := mnk.pgpKeySet.MasterKey.FingerprintV4()
	return fp[:]
}

// SubkeyFingerprintV4 returns the version-4 fingerprint of the given subkey
// type, or nil if the Mnemonikey was created without it.
func (mnk *Mnemonikey) SubkeyFingerprintV4(subkeyType SubkeyType) []byte {
	switch subkeyType {
	case SubkeyTypeEncryption:
		fp := mnk.pgpKeySet.EncryptionSubkey.FingerprintV4()
		return fp[:]

	case SubkeyTypeAuthentication:
		if mnk.pgpKeySet.AuthenticationSubkey != nil {
			fp := mnk.pgpKeySet.AuthenticationSubkey.FingerprintV4()
			return fp[:]
		}

	case SubkeyTypeSigning:
		if mnk.pgpKeySet.SigningSubkey != nil {
			fp := mnk.pgpKeySet.SigningSubkey.FingerprintV4()
			return fp[:]
		}
	}
	return nil
}

// Zero destroys the Mnemonikey's seed and all derived private key material.
// Call this once the caller is done encoding output.
func (mnk *Mnemonikey) Zero() {
	mnk.seed.Zero()
	mnk.pgpKeySet.Zero()
}

// EncodePGP encodes the entire Mnemonikey as a series of binary OpenPGP packets.
//
// If password is non-nil, it is used to encrypt private key material with
// the OpenPGP String-to-Key algorithm.
func (mnk *Mnemonikey) EncodePGP(password []byte) ([]byte, error) {
	return mnk.pgpKeySet.EncodePackets(password)
}

// EncodeSubkeysPGP encodes the Mnemonikey as a series of binary OpenPGP
// packets, but only includes private key material for subkeys. The master
// key's secret material and self-certification are omitted, since the
// caller is presumed to already hold the master key.
//
// If password is non-nil, it is used to encrypt private key material with
// the OpenPGP String-to-Key algorithm.
func (mnk *Mnemonikey) EncodeSubkeysPGP(password []byte) ([]byte, error) {
	return mnk.pgpKeySet.EncodeSubkeyPackets(password)
}

// EncodePublicPGP encodes only the public halves of the Mnemonikey's keys,
// with no secret material at all.
func (mnk *Mnemonikey) EncodePublicPGP() ([]byte, error) {
	return mnk.pgpKeySet.EncodePublicPackets()
}

// EncodePGPArmor encodes the entire Mnemonikey as OpenPGP packets wrapped in
// ASCII armor.
func (mnk *Mnemonikey) EncodePGPArmor(password []byte) (string, error) {
	keyPacketData, err := mnk.pgpKeySet.EncodePackets(password)
	if err != nil {
		return "", err
	}
	return armorEncode(openpgp.PrivateKeyType, keyPacketData)
}

// EncodeSubkeysPGPArmor encodes the Mnemonikey's subkeys as OpenPGP packets
// wrapped in ASCII armor. See EncodeSubkeysPGP.
func (mnk *Mnemonikey) EncodeSubkeysPGPArmor(password []byte) (string, error) {
	keyPacketData, err := mnk.EncodeSubkeysPGP(password)
	if err != nil {
		return "", err
	}
	return armorEncode(openpgp.PrivateKeyType, keyPacketData)
}

// EncodePublicPGPArmor encodes the Mnemonikey's public packets wrapped in
// ASCII armor.
func (mnk *Mnemonikey) EncodePublicPGPArmor() (string, error) {
	keyPacketData, err := mnk.pgpKeySet.EncodePublicPackets()
	if err != nil {
		return "", err
	}
	return armorEncode(openpgp.PublicKeyType, keyPacketData)
}

// creationOffset returns the number of EpochIncrements between EpochStart
// and the key's creation time.
func (mnk *Mnemonikey) creationOffset() uint64 {
	offset, _ := mnemonic.EncodeCreationOffset(mnk.keyCreationTime)
	return offset
}

// EncodeMnemonic encodes the Mnemonikey's seed and creation offset into a
// plaintext English recovery phrase. The phrase alone is sufficient to
// recover the entire set of keys.
func (mnk *Mnemonikey) EncodeMnemonic() ([]string, error) {
	words, err := mnemonic.Encode(mnk.seed.Bytes(), mnk.creationOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed to recovery phrase: %w", err)
	}
	return words, nil
}

// EncodeMnemonicEncrypted encodes the Mnemonikey's seed and creation offset
// into a password-encrypted English recovery phrase. A wrong password
// during decoding is indistinguishable from a corrupted phrase.
func (mnk *Mnemonikey) EncodeMnemonicEncrypted(password []byte) ([]string, error) {
	words, err := mnemonic.EncodeEncrypted(mnk.seed.Bytes(), mnk.creationOffset(), password)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed to encrypted recovery phrase: %w", err)
	}
	return words, nil
}

func armorEncode(blockType string, data []byte) (string, error) {
	buf := new(bytes.Buffer)
	armorWriter, err := armor.Encode(buf, blockType, nil)
	if err != nil {
		return "", fmt.Errorf("failed to construct armor encoder: %w", err)
	}
	if _, err := armorWriter.Write(data); err != nil {
		return "", fmt.Errorf("failed to write PGP packets to armor encoder: %w", err)
	}
	if err := armorWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to close PGP armor encoder: %w", err)
	}
	return buf.String(), nil
}
