package pgp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testSeed() []byte {
	return []byte{
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}
}

func TestDeriveKeySetDeterministic(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	ks1, err := DeriveKeySet(testSeed(), created, 0, "test <test@example.com>", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)
	ks2, err := DeriveKeySet(testSeed(), created, 0, "test <test@example.com>", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)

	require.Equal(t, ks1.MasterKey.FingerprintV4(), ks2.MasterKey.FingerprintV4())
	require.Equal(t, ks1.EncryptionSubkey.FingerprintV4(), ks2.EncryptionSubkey.FingerprintV4())
}

func TestDeriveKeySetDistinctRoles(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ks, err := DeriveKeySet(testSeed(), created, 0, "test <test@example.com>", time.Time{}, SubkeyOptions{
		IncludeAuthSubkey:    true,
		IncludeSigningSubkey: true,
	})
	require.NoError(t, err)

	require.NotEqual(t, ks.MasterKey.FingerprintV4(), ks.EncryptionSubkey.FingerprintV4())
	require.NotEqual(t, ks.MasterKey.Public, ks.AuthenticationSubkey.Public)
	require.NotEqual(t, ks.AuthenticationSubkey.Public, ks.SigningSubkey.Public)
}

func TestDeriveKeySetOffsetChangesFingerprint(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ks1, err := DeriveKeySet(testSeed(), created, 0, "u", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)
	ks2, err := DeriveKeySet(testSeed(), created, 1, "u", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)

	require.NotEqual(t, ks1.MasterKey.FingerprintV4(), ks2.MasterKey.FingerprintV4())
}

func TestEncodePacketsUnencrypted(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ks, err := DeriveKeySet(testSeed(), created, 0, "test <test@example.com>", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)

	packets, err := ks.EncodePackets(nil)
	require.NoError(t, err)
	require.NotEmpty(t, packets)

	// Secret key packet tag (5) framed as 0xC0|5 = 0xC5.
	require.Equal(t, byte(0xC5), packets[0])
}

func TestEncodePacketsEncrypted(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ks, err := DeriveKeySet(testSeed(), created, 0, "test <test@example.com>", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)

	packets, err := ks.EncodePackets([]byte("hunter2"))
	require.NoError(t, err)
	require.NotEmpty(t, packets)
}

func TestEncodePublicPacketsNoSecretMaterial(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ks, err := DeriveKeySet(testSeed(), created, 0, "test <test@example.com>", time.Time{}, SubkeyOptions{})
	require.NoError(t, err)

	packets, err := ks.EncodePublicPackets()
	require.NoError(t, err)

	// Public key packet tag (6) framed as 0xC0|6 = 0xC6.
	require.Equal(t, byte(0xC6), packets[0])
}

func TestEncodePublicPacketsSignaturesVerify(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	userID := "test <test@example.com>"
	ks, err := DeriveKeySet(testSeed(), created, 0, userID, time.Time{}, SubkeyOptions{
		IncludeAuthSubkey:    true,
		IncludeSigningSubkey: true,
	})
	require.NoError(t, err)

	packets, err := ks.EncodePublicPackets()
	require.NoError(t, err)

	masterBody := ks.MasterKey.publicKeyBody()
	rest := packets
	var tag byte
	var sig []byte

	tag, _, rest, err = parsePacket(rest) // primary public key
	require.NoError(t, err)
	require.Equal(t, tagPublicKey, tag)

	tag, _, rest, err = parsePacket(rest) // user ID
	require.NoError(t, err)
	require.Equal(t, tagUserID, tag)

	tag, sig, rest, err = parsePacket(rest) // self-certification
	require.NoError(t, err)
	require.Equal(t, tagSignature, tag)
	certPrehashed := append(keyHashPrefix(masterBody), useridHashPrefix(userID)...)
	require.NoError(t, verifySignaturePacket(ks.MasterKey.Public, sig, certPrehashed))

	for _, subBody := range [][]byte{
		ks.EncryptionSubkey.publicKeyBody(),
		ks.AuthenticationSubkey.publicKeyBody(),
		ks.SigningSubkey.publicKeyBody(),
	} {
		tag, _, rest, err = parsePacket(rest) // subkey public key
		require.NoError(t, err)
		require.Equal(t, tagPublicSubkey, tag)

		tag, sig, rest, err = parsePacket(rest) // subkey binding signature
		require.NoError(t, err)
		require.Equal(t, tagSignature, tag)

		subPrehashed := append(keyHashPrefix(masterBody), keyHashPrefix(subBody)...)
		require.NoError(t, verifySignaturePacket(ks.MasterKey.Public, sig, subPrehashed))
	}

	require.Empty(t, rest)
}

func TestKeySetZeroClearsSecrets(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	ks, err := DeriveKeySet(testSeed(), created, 0, "u", time.Time{}, SubkeyOptions{IncludeAuthSubkey: true})
	require.NoError(t, err)

	ks.Zero()

	var zero [32]byte
	require.Equal(t, zero, ks.MasterKey.seed)
	require.Equal(t, zero, ks.EncryptionSubkey.secret)
	require.Equal(t, zero, ks.AuthenticationSubkey.seed)
}
