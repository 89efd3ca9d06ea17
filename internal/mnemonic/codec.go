// Package mnemonic implements the recovery-phrase codec: a fixed 4096-word
// table (component A), an MSB-first bit accumulator (component B), a CRC-32
// checksum (component C), an Argon2id password KDF (component D), and the
// plaintext/encrypted phrase codec itself (component E) built on top of them.
package mnemonic

import (
	"time"
)

// Bit widths of the fields making up a MnemonicPayload, per the data model.
const (
	VersionBitCount        uint = 3
	CreationOffsetBitCount uint = 15
	EntropyBitCount        uint = 128
	ReservedBitCount       uint = 8

	// PayloadBitCount is the size of the payload before the checksum is appended.
	PayloadBitCount = VersionBitCount + CreationOffsetBitCount + EntropyBitCount + ReservedBitCount

	// TotalBitCount is the payload plus its checksum.
	TotalBitCount = PayloadBitCount + ChecksumBitCount

	// WordCount is the number of words a phrase is split into. A 4096-word
	// (12-bit) table doesn't divide TotalBitCount evenly (184 bits is not a
	// multiple of 12), so the wire form pads the tail with WordPadBitCount
	// zero bits purely to reach a whole number of words; those pad bits
	// carry no information and are never validated on decode.
	WordCount = 16

	WordPadBitCount = WordCount*WordBitCount - TotalBitCount
)

const (
	// VersionPlaintext is the phrase version for an unencrypted payload.
	VersionPlaintext uint64 = 0

	// VersionEncrypted is the phrase version for a password-encrypted payload.
	VersionEncrypted uint64 = 1
)

// Epoch is the mnemonikey reference date: 2022-01-01T00:00:00Z. Creation
// times are stored on the wire as whole days since this instant.
var Epoch = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

// MaxCreationOffset is the largest creation offset representable in
// CreationOffsetBitCount bits.
const MaxCreationOffset = (1 << CreationOffsetBitCount) - 1

// creationSkew is the permitted clock skew when rejecting "future" creation
// offsets on decode (§4.E step 3).
const creationSkew = 24 * time.Hour

// EncodeCreationOffset converts a wall-clock time to a days-since-Epoch
// offset, rejecting times before the epoch or beyond the 15-bit range.
func EncodeCreationOffset(t time.Time) (uint64, error) {
	days := int64(t.Sub(Epoch) / (24 * time.Hour))
	if days < 0 || days > MaxCreationOffset {
		return 0, ErrCreationOutOfRange
	}
	return uint64(days), nil
}

// DecodeCreationOffset converts a days-since-Epoch offset back to a wall-clock time.
func DecodeCreationOffset(offset uint64) time.Time {
	return Epoch.Add(time.Duration(offset) * 24 * time.Hour)
}

// Encode packs (creationOffset, entropy) into the plaintext payload
// (version=0, reserved=0), appends its checksum, and maps the result to
// WordCount words (component E, "Encoding (plaintext)").
func Encode(entropy []byte, creationOffset uint64) ([]string, error) {
	if len(entropy) != int(EntropyBitCount/8) {
		return nil, ErrInvalidEntropyLength
	}
	if creationOffset > MaxCreationOffset {
		return nil, ErrCreationOutOfRange
	}

	payloadBytes, err := packPayload(VersionPlaintext, creationOffset, entropy, 0)
	if err != nil {
		return nil, err
	}
	checksum := Checksum(payloadBytes)

	buf := NewBitBuffer()
	if err := pushPayloadFields(buf, VersionPlaintext, creationOffset, entropy, 0); err != nil {
		return nil, err
	}
	if err := buf.Push(uint64(checksum), ChecksumBitCount); err != nil {
		return nil, err
	}

	return wordsFromBuffer(buf)
}

// Decode reverses Encode, validating the checksum, version, and reserved
// field, and rejecting creation offsets from the future (component E,
// "Decoding (plaintext)").
func Decode(phraseWords []string) (entropy []byte, creationOffset uint64, err error) {
	buf, err := bufferFromWords(phraseWords)
	if err != nil {
		return nil, 0, err
	}

	version, creationOffset, entropy, reserved, storedChecksum, err := readPayloadAndChecksum(buf)
	if err != nil {
		return nil, 0, err
	}

	payloadBytes, err := packPayload(version, creationOffset, entropy, reserved)
	if err != nil {
		return nil, 0, err
	}
	if uint32(storedChecksum) != Checksum(payloadBytes) {
		return nil, 0, ErrChecksumMismatch
	}

	if version != VersionPlaintext {
		return nil, 0, ErrUnknownVersion
	}
	if reserved != 0 {
		return nil, 0, ErrReservedNonZero
	}
	if err := checkCreationOffset(creationOffset); err != nil {
		return nil, 0, err
	}

	return entropy, creationOffset, nil
}

// EncodeEncrypted encrypts entropy under password and encodes the result as
// a WordCount-word phrase indistinguishable in length from a plaintext one
// (component E, "Encoding (encrypted)"). The salt used for PasswordKDF is
// derived deterministically from the public header bits, so the same
// (entropy, creationOffset, password) always yields the same phrase.
func EncodeEncrypted(entropy []byte, creationOffset uint64, password []byte) ([]string, error) {
	if len(entropy) != int(EntropyBitCount/8) {
		return nil, ErrInvalidEntropyLength
	}
	if creationOffset > MaxCreationOffset {
		return nil, ErrCreationOutOfRange
	}

	salt := EncryptedPhraseSalt(VersionEncrypted, creationOffset)
	mask, verify, err := PasswordKDF(password, salt)
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, EntropyBitCount/8)
	for i := range ciphertext {
		ciphertext[i] = entropy[i] ^ mask[i%PasswordMaskLen]
	}

	payloadBytes, err := packPayload(VersionEncrypted, creationOffset, ciphertext, 0)
	if err != nil {
		return nil, err
	}
	checksum := Checksum(payloadBytes) ^ (uint32(verify) << 26)

	buf := NewBitBuffer()
	if err := pushPayloadFields(buf, VersionEncrypted, creationOffset, ciphertext, 0); err != nil {
		return nil, err
	}
	if err := buf.Push(uint64(checksum), ChecksumBitCount); err != nil {
		return nil, err
	}

	return wordsFromBuffer(buf)
}

// DecodeEncrypted reverses EncodeEncrypted. A wrong password produces
// ErrChecksumMismatch, indistinguishable from a corrupted phrase by design
// (component E, "Decoding (encrypted)"), whenever its 4-bit verification
// nibble differs from the right password's. The check covers only that
// nibble, so about one wrong password in 16 passes it and decodes to
// different entropy.
func DecodeEncrypted(phraseWords []string, password []byte) (entropy []byte, creationOffset uint64, err error) {
	buf, err := bufferFromWords(phraseWords)
	if err != nil {
		return nil, 0, err
	}

	version, creationOffset, ciphertext, reserved, storedChecksum, err := readPayloadAndChecksum(buf)
	if err != nil {
		return nil, 0, err
	}

	if version != VersionEncrypted {
		return nil, 0, ErrUnknownVersion
	}

	salt := EncryptedPhraseSalt(VersionEncrypted, creationOffset)
	mask, verify, err := PasswordKDF(password, salt)
	if err != nil {
		return nil, 0, err
	}

	payloadBytes, err := packPayload(version, creationOffset, ciphertext, reserved)
	if err != nil {
		return nil, 0, err
	}
	expected := Checksum(payloadBytes) ^ (uint32(verify) << 26)
	if uint32(storedChecksum) != expected {
		return nil, 0, ErrChecksumMismatch
	}

	if reserved != 0 {
		return nil, 0, ErrReservedNonZero
	}
	if err := checkCreationOffset(creationOffset); err != nil {
		return nil, 0, err
	}

	entropy = make([]byte, EntropyBitCount/8)
	for i := range entropy {
		entropy[i] = ciphertext[i] ^ mask[i%PasswordMaskLen]
	}

	return entropy, creationOffset, nil
}

func checkCreationOffset(offset uint64) error {
	maxOffset, err := EncodeCreationOffset(time.Now().Add(creationSkew))
	if err != nil {
		// time.Now() is always within range; this can't happen in practice.
		maxOffset = MaxCreationOffset
	}
	if offset > maxOffset {
		return ErrCreationOutOfRange
	}
	return nil
}

// pushPayloadFields pushes version, creationOffset, entropyOrCiphertext
// (big-endian within the field) and reserved into buf, in the field order
// mandated by component B.
func pushPayloadFields(buf *BitBuffer, version, creationOffset uint64, entropyOrCiphertext []byte, reserved uint64) error {
	if err := buf.Push(version, VersionBitCount); err != nil {
		return err
	}
	if err := buf.Push(creationOffset, CreationOffsetBitCount); err != nil {
		return err
	}
	for _, b := range entropyOrCiphertext {
		if err := buf.Push(uint64(b), 8); err != nil {
			return err
		}
	}
	if err := buf.Push(reserved, ReservedBitCount); err != nil {
		return err
	}
	return nil
}

// packPayload rebuilds the fixed 154-bit payload in its own fresh BitBuffer
// and packs it to bytes MSB-first, zero-padding the tail, for checksumming.
func packPayload(version, creationOffset uint64, entropyOrCiphertext []byte, reserved uint64) ([]byte, error) {
	buf := NewBitBuffer()
	if err := pushPayloadFields(buf, version, creationOffset, entropyOrCiphertext, reserved); err != nil {
		return nil, err
	}
	return buf.ToBytes(0)
}

// readPayloadAndChecksum reads the full field set plus the trailing checksum
// from a word-derived bit buffer.
func readPayloadAndChecksum(buf *BitBuffer) (version, creationOffset uint64, entropyOrCiphertext []byte, reserved, checksum uint64, err error) {
	version, err = buf.Read(VersionBitCount)
	if err != nil {
		return
	}
	creationOffset, err = buf.Read(CreationOffsetBitCount)
	if err != nil {
		return
	}
	entropyOrCiphertext = make([]byte, EntropyBitCount/8)
	for i := range entropyOrCiphertext {
		var b uint64
		b, err = buf.Read(8)
		if err != nil {
			return
		}
		entropyOrCiphertext[i] = byte(b)
	}
	reserved, err = buf.Read(ReservedBitCount)
	if err != nil {
		return
	}
	checksum, err = buf.Read(ChecksumBitCount)
	return
}

func wordsFromBuffer(buf *BitBuffer) ([]string, error) {
	if err := buf.Push(0, WordPadBitCount); err != nil {
		return nil, err
	}
	phraseWords := make([]string, WordCount)
	for i := 0; i < WordCount; i++ {
		index, err := buf.Read(WordBitCount)
		if err != nil {
			return nil, err
		}
		word, err := WordAt(uint16(index))
		if err != nil {
			return nil, err
		}
		phraseWords[i] = word
	}
	return phraseWords, nil
}

// bufferFromWords maps each word back to its index and packs the indices
// into a fresh read-cursor BitBuffer, discarding the trailing alignment pad.
func bufferFromWords(phraseWords []string) (*BitBuffer, error) {
	if len(phraseWords) != WordCount {
		return nil, ErrWordCount
	}
	buf := NewBitBuffer()
	for _, w := range phraseWords {
		idx, err := IndexOf(w)
		if err != nil {
			return nil, err
		}
		if err := buf.Push(uint64(idx), WordBitCount); err != nil {
			return nil, err
		}
	}
	return buf, nil
}
