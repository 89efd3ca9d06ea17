package mnemonikey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSeed(t *testing.T) *Seed {
	seed, err := NewSeed(make([]byte, SeedSize))
	require.NoError(t, err)
	return seed
}

func TestNewAndRecoverRoundTrip(t *testing.T) {
	seed := testSeed(t)
	creation := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	opts := &KeyOptions{Name: "Jane Doe", Email: "jane@example.com"}

	mnk, err := New(seed, creation, opts)
	require.NoError(t, err)

	words, err := mnk.EncodeMnemonic()
	require.NoError(t, err)
	require.Len(t, words, MnemonicSize)

	recovered, err := Recover(words, opts)
	require.NoError(t, err)

	require.Equal(t, mnk.FingerprintV4(), recovered.FingerprintV4())
	require.Equal(t, mnk.CreatedAt(), recovered.CreatedAt())
}

func TestNewRejectsCreationBeforeEpoch(t *testing.T) {
	seed := testSeed(t)
	_, err := New(seed, EpochStart.Add(-time.Hour), nil)
	require.ErrorIs(t, err, ErrCreationTooEarly)
}

func TestNewRejectsExpiryBeforeCreation(t *testing.T) {
	seed := testSeed(t)
	creation := EpochStart.Add(24 * time.Hour)
	_, err := New(seed, creation, &KeyOptions{Expiry: EpochStart})
	require.ErrorIs(t, err, ErrExpiryTooEarly)
}

func TestEncodePGPProducesSecretKeyPacket(t *testing.T) {
	seed := testSeed(t)
	mnk, err := New(seed, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), &KeyOptions{Name: "Test"})
	require.NoError(t, err)

	packets, err := mnk.EncodePGP(nil)
	require.NoError(t, err)
	require.NotEmpty(t, packets)
}

func TestSubkeyFingerprintsPresentWhenRequested(t *testing.T) {
	seed := testSeed(t)
	mnk, err := New(seed, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), &KeyOptions{
		IncludeAuthSubkey:    true,
		IncludeSigningSubkey: true,
	})
	require.NoError(t, err)

	require.NotNil(t, mnk.SubkeyFingerprintV4(SubkeyTypeEncryption))
	require.NotNil(t, mnk.SubkeyFingerprintV4(SubkeyTypeAuthentication))
	require.NotNil(t, mnk.SubkeyFingerprintV4(SubkeyTypeSigning))
}

func TestSubkeyFingerprintNilWhenNotRequested(t *testing.T) {
	seed := testSeed(t)
	mnk, err := New(seed, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), nil)
	require.NoError(t, err)

	require.Nil(t, mnk.SubkeyFingerprintV4(SubkeyTypeAuthentication))
}

func TestEncryptedMnemonicRecoverRoundTrip(t *testing.T) {
	seed := testSeed(t)
	creation := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mnk, err := New(seed, creation, nil)
	require.NoError(t, err)

	words, err := mnk.EncodeMnemonicEncrypted([]byte("hunter2"))
	require.NoError(t, err)

	recovered, err := RecoverEncrypted(words, []byte("hunter2"), nil)
	require.NoError(t, err)
	require.Equal(t, mnk.FingerprintV4(), recovered.FingerprintV4())
}

func TestConvertPlaintextToEncryptedAndBackRoundTrips(t *testing.T) {
	seed := testSeed(t)
	creation := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mnk, err := New(seed, creation, nil)
	require.NoError(t, err)

	original, err := mnk.EncodeMnemonic()
	require.NoError(t, err)

	encrypted, err := Convert(original, nil, []byte("hunter2"))
	require.NoError(t, err)
	require.Len(t, encrypted, MnemonicSize)
	require.NotEqual(t, original, encrypted)

	roundTripped, err := Convert(encrypted, []byte("hunter2"), nil)
	require.NoError(t, err)
	require.Equal(t, original, roundTripped)
}

func TestConvertWrongPasswordFailsChecksum(t *testing.T) {
	seed := testSeed(t)
	creation := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mnk, err := New(seed, creation, nil)
	require.NoError(t, err)

	encrypted, err := mnk.EncodeMnemonicEncrypted([]byte("hunter2"))
	require.NoError(t, err)

	_, err = Convert(encrypted, []byte("wrong"), nil)
	require.ErrorIs(t, err, ErrInvalidChecksum)
}

func TestGenerateSeedProducesUniqueSeeds(t *testing.T) {
	s1, err := GenerateSeed()
	require.NoError(t, err)
	s2, err := GenerateSeed()
	require.NoError(t, err)
	require.NotEqual(t, s1, s2)
}
