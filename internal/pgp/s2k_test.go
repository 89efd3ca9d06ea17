package pgp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestS2KDecodedCountMinimum(t *testing.T) {
	require.Equal(t, 65011712, s2kDecodedCount(0xFF))
}

func TestEncryptSecretMaterialRoundTripShape(t *testing.T) {
	secretMPI := mpiEncode([]byte{0x01, 0x02, 0x03, 0x04})
	out, err := encryptSecretMaterial(secretMPI, []byte("hunter2"))
	require.NoError(t, err)

	require.Equal(t, usageS2KChecksummed, out[0])
	require.Equal(t, symAlgoAES256, out[1])
	require.Equal(t, byte(s2kSpecifierIteratedSalted), out[2])
	require.Equal(t, hashAlgoSHA256, out[3])

	// salt(8) + count(1) + iv(16) follow the 4-byte header.
	ciphertextStart := 4 + s2kSaltLen + 1 + s2kIVLen
	require.Greater(t, len(out), ciphertextStart)
}

func TestEncryptSecretMaterialNonDeterministicSalt(t *testing.T) {
	secretMPI := mpiEncode([]byte{0x01, 0x02})
	out1, err := encryptSecretMaterial(secretMPI, []byte("pw"))
	require.NoError(t, err)
	out2, err := encryptSecretMaterial(secretMPI, []byte("pw"))
	require.NoError(t, err)

	require.NotEqual(t, out1, out2, "fresh salt/IV must randomize ciphertext each call")
}

func TestUnencryptedSecretMaterialChecksum(t *testing.T) {
	secretMPI := []byte{0x00, 0x08, 0xFF}
	out := unencryptedSecretMaterial(secretMPI)

	require.Equal(t, usageUnencrypted, out[0])
	expected := checksum16(secretMPI)
	got := uint16(out[len(out)-2])<<8 | uint16(out[len(out)-1])
	require.Equal(t, expected, got)
}
