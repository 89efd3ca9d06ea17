package mnemonic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func allZeroEntropy() []byte { return make([]byte, EntropyBitCount/8) }

func allOnesEntropy() []byte {
	b := make([]byte, EntropyBitCount/8)
	for i := range b {
		b[i] = 0xFF
	}
	return b
}

func TestEncodeDecodeRoundTripZero(t *testing.T) {
	words, err := Encode(allZeroEntropy(), 0)
	require.NoError(t, err)
	require.Len(t, words, WordCount)

	entropy, offset, err := Decode(words)
	require.NoError(t, err)
	require.Equal(t, allZeroEntropy(), entropy)
	require.EqualValues(t, 0, offset)
}

func TestEncodeDecodeRoundTripOnes(t *testing.T) {
	words, err := Encode(allOnesEntropy(), 1)
	require.NoError(t, err)

	entropy, offset, err := Decode(words)
	require.NoError(t, err)
	require.Equal(t, allOnesEntropy(), entropy)
	require.EqualValues(t, 1, offset)
}

func TestEncodeDecodeRoundTripArbitrary(t *testing.T) {
	entropy := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef, 0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	offset, err := EncodeCreationOffset(Epoch.AddDate(1, 0, 0))
	require.NoError(t, err)

	words, err := Encode(entropy, offset)
	require.NoError(t, err)

	decodedEntropy, decodedOffset, err := Decode(words)
	require.NoError(t, err)
	require.Equal(t, entropy, decodedEntropy)
	require.Equal(t, offset, decodedOffset)
}

func TestCreationOffsetBoundary(t *testing.T) {
	words, err := Encode(allZeroEntropy(), 0)
	require.NoError(t, err)
	_, offset, err := Decode(words)
	require.NoError(t, err)
	require.EqualValues(t, 0, offset)

	// MaxCreationOffset passes the field's range check and packs into a
	// PayloadBitCount-bit payload; it is not decoded here, since Decode's
	// "future" rejection is a separate, wall-clock-relative check.
	buf := NewBitBuffer()
	require.NoError(t, pushPayloadFields(buf, VersionPlaintext, MaxCreationOffset, allZeroEntropy(), 0))
	payloadBytes, err := buf.ToBytes(0)
	require.NoError(t, err)
	require.Len(t, payloadBytes, (int(PayloadBitCount)+7)/8)
}

func TestEncodeRejectsOutOfRangeOffset(t *testing.T) {
	_, err := Encode(allZeroEntropy(), MaxCreationOffset+1)
	require.ErrorIs(t, err, ErrCreationOutOfRange)
}

func TestDecodeRejectsWrongWordCount(t *testing.T) {
	_, _, err := Decode([]string{"only", "one", "two", "three"})
	require.ErrorIs(t, err, ErrWordCount)
}

func TestChecksumSensitivity(t *testing.T) {
	words, err := Encode(allZeroEntropy(), 5)
	require.NoError(t, err)

	idx, err := IndexOf(words[0])
	require.NoError(t, err)

	// Flip the lowest bit of the first word's index, producing a different
	// (but still valid) word, which must fail decode with ChecksumMismatch.
	corruptIdx := idx ^ 1
	corruptWord, err := WordAt(corruptIdx)
	require.NoError(t, err)

	corrupted := append([]string(nil), words...)
	corrupted[0] = corruptWord

	_, _, err = Decode(corrupted)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestWordPrefixToleranceRoundTrip(t *testing.T) {
	words, err := Encode(allOnesEntropy(), 42)
	require.NoError(t, err)

	prefixed := make([]string, len(words))
	for i, w := range words {
		if len(w) >= 4 {
			prefixed[i] = w[:4]
		} else {
			prefixed[i] = w
		}
	}

	entropy, offset, err := Decode(prefixed)
	require.NoError(t, err)
	require.Equal(t, allOnesEntropy(), entropy)
	require.EqualValues(t, 42, offset)
}

func TestEncryptedRoundTrip(t *testing.T) {
	entropy := allOnesEntropy()
	password := []byte("correct horse battery staple")

	words, err := EncodeEncrypted(entropy, 10, password)
	require.NoError(t, err)
	require.Len(t, words, WordCount)

	decoded, offset, err := DecodeEncrypted(words, password)
	require.NoError(t, err)
	require.Equal(t, entropy, decoded)
	require.EqualValues(t, 10, offset)
}

func TestEncryptedWrongPasswordFails(t *testing.T) {
	entropy := allOnesEntropy()
	words, err := EncodeEncrypted(entropy, 10, []byte("correct horse battery staple"))
	require.NoError(t, err)

	_, _, err = DecodeEncrypted(words, []byte("Correct horse battery staple"))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestEncryptedDeterministicGivenSameInputs(t *testing.T) {
	entropy := allZeroEntropy()
	password := []byte("hunter2")

	words1, err := EncodeEncrypted(entropy, 99, password)
	require.NoError(t, err)
	words2, err := EncodeEncrypted(entropy, 99, password)
	require.NoError(t, err)

	require.Equal(t, words1, words2)
}

func TestPlaintextDecodeRejectsEncryptedVersion(t *testing.T) {
	words, err := EncodeEncrypted(allZeroEntropy(), 1, []byte("pw"))
	require.NoError(t, err)

	// Decode verifies the checksum before the version field. The encrypted
	// phrase's checksum has the password's verification nibble (1 for this
	// password and offset) XORed in, so the plain checksum check rejects it.
	_, _, err = Decode(words)
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestUnknownVersionGating(t *testing.T) {
	for version := uint64(2); version <= 7; version++ {
		buf := NewBitBuffer()
		require.NoError(t, pushPayloadFields(buf, version, 0, allZeroEntropy(), 0))
		payloadBytes, err := buf.ToBytes(0)
		require.NoError(t, err)
		checksum := Checksum(payloadBytes)

		buf2 := NewBitBuffer()
		require.NoError(t, pushPayloadFields(buf2, version, 0, allZeroEntropy(), 0))
		require.NoError(t, buf2.Push(uint64(checksum), ChecksumBitCount))
		words, err := wordsFromBuffer(buf2)
		require.NoError(t, err)

		_, _, err = Decode(words)
		require.ErrorIs(t, err, ErrUnknownVersion, "version %d", version)
	}
}

func TestEncryptedCiphertextDiffersFromPlaintextEntropy(t *testing.T) {
	entropy := allOnesEntropy()
	words, err := EncodeEncrypted(entropy, 1, []byte("pw"))
	require.NoError(t, err)

	plainWords, err := Encode(entropy, 1)
	require.NoError(t, err)

	require.False(t, bytes.Equal([]byte(words[2]), []byte(plainWords[2])), "ciphertext phrase should diverge from plaintext phrase")
}
