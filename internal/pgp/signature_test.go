package pgp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSubpacketLengthBytesForms(t *testing.T) {
	require.Equal(t, []byte{4}, subpacketLengthBytes(4))
	require.Len(t, subpacketLengthBytes(300), 2)
	require.Len(t, subpacketLengthBytes(10000), 5)
}

func TestSelfCertificationVerifiable(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	material := [32]byte{1, 2, 3}
	primary := NewPrimaryKey(created, material)
	userID := "test <t@example.com>"

	sig, err := selfCertification(primary.privateKey(), primary.publicKeyBody(), primary.KeyID(), created, userID, time.Time{})
	require.NoError(t, err)
	require.NotEmpty(t, sig)
	// Signature packet tag (2) framed as 0xC0|2 = 0xC2.
	require.Equal(t, byte(0xC2), sig[0])

	prehashed := append(keyHashPrefix(primary.publicKeyBody()), useridHashPrefix(userID)...)
	require.NoError(t, verifySignaturePacket(primary.Public, sig, prehashed))

	tampered := append([]byte{}, sig...)
	tampered[len(tampered)-1] ^= 0x01
	require.Error(t, verifySignaturePacket(primary.Public, tampered, prehashed))
}

func TestSubkeyBindingFlagsAffectSignature(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	primary := NewPrimaryKey(created, [32]byte{1})
	sub, err := NewECDHSubkey(created, [32]byte{2})
	require.NoError(t, err)

	sigA, err := subkeyBinding(primary.privateKey(), primary.publicKeyBody(), sub.publicKeyBody(), primary.KeyID(), created, FlagEncryptComm, time.Time{})
	require.NoError(t, err)

	sigB, err := subkeyBinding(primary.privateKey(), primary.publicKeyBody(), sub.publicKeyBody(), primary.KeyID(), created, FlagSign, time.Time{})
	require.NoError(t, err)

	require.NotEqual(t, sigA, sigB)

	prehashed := append(keyHashPrefix(primary.publicKeyBody()), keyHashPrefix(sub.publicKeyBody())...)
	require.NoError(t, verifySignaturePacket(primary.Public, sigA, prehashed))
	require.NoError(t, verifySignaturePacket(primary.Public, sigB, prehashed))

	// A signature from a different key must not verify against primary's
	// own public key.
	other := NewPrimaryKey(created, [32]byte{9, 9, 9})
	require.Error(t, verifySignaturePacket(other.Public, sigA, prehashed))
}

func TestSelfCertificationExpirySubpacketIncluded(t *testing.T) {
	created := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	expiry := created.AddDate(1, 0, 0)
	primary := NewPrimaryKey(created, [32]byte{1})

	withExpiry, err := selfCertification(primary.privateKey(), primary.publicKeyBody(), primary.KeyID(), created, "u", expiry)
	require.NoError(t, err)

	withoutExpiry, err := selfCertification(primary.privateKey(), primary.publicKeyBody(), primary.KeyID(), created, "u", time.Time{})
	require.NoError(t, err)

	require.NotEqual(t, withExpiry, withoutExpiry)
}
