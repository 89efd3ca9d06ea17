package pgp

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/hkdf"

	"crypto/sha256"
)

// Role names passed to HKDF's info parameter to domain-separate each
// derived subkey from the same stretched seed (component F step 2).
const (
	RoleSign    = "sign"
	RoleEncrypt = "encrypt"
	RoleAuth    = "auth"
)

// Argon2id parameters mandated for the seed-stretching step (component F
// step 1). These are independent of, and must never be confused with, the
// phrase-level PasswordKDF parameters in the mnemonic package.
const (
	stretchMemoryKiB   uint32 = 64 * 1024
	stretchIterations  uint32 = 8
	stretchParallelism uint8  = 4
	stretchOutputLen   uint32 = 32
)

const stretchSalt = "mnemonikey"

// StretchSeed runs Argon2id over the 16-byte seed to produce the 32-byte
// root key material that per-role HKDF expansion is then derived from.
func StretchSeed(seed []byte) [32]byte {
	out := argon2.IDKey(seed, []byte(stretchSalt), stretchIterations, stretchMemoryKiB, stretchParallelism, stretchOutputLen)
	var root [32]byte
	copy(root[:], out)
	zeroBytes(out)
	return root
}

// ExpandRole derives 32 bytes of role-specific key material from root via
// HKDF-SHA256, domain-separated by role and the key's creation offset
// (component F step 2). The same seed therefore yields entirely different,
// non-mixable scalars for each role.
func ExpandRole(root [32]byte, role string, creationOffset uint64) ([32]byte, error) {
	info := make([]byte, 0, len("mnemonikey/")+len(role)+1+8)
	info = append(info, []byte("mnemonikey/"+role+"/")...)
	var offsetBytes [8]byte
	binary.BigEndian.PutUint64(offsetBytes[:], creationOffset)
	info = append(info, offsetBytes[:]...)

	reader := hkdf.New(sha256.New, root[:], nil, info)
	var material [32]byte
	if _, err := io.ReadFull(reader, material[:]); err != nil {
		return material, ErrDerivationFailure
	}
	return material, nil
}

// clampCurve25519 applies the RFC 7748 clamping operation required before
// using HKDF output as an X25519 scalar (component F step 3).
func clampCurve25519(material [32]byte) [32]byte {
	clamped := material
	clamped[0] &= 0xF8
	clamped[31] &= 0x7F
	clamped[31] |= 0x40
	return clamped
}

// curve25519PublicKey computes the X25519 public point for a clamped scalar.
func curve25519PublicKey(clampedScalar [32]byte) ([32]byte, error) {
	var pub [32]byte
	out, err := curve25519.X25519(clampedScalar[:], curve25519.Basepoint)
	if err != nil {
		return pub, ErrDerivationFailure
	}
	copy(pub[:], out)
	return pub, nil
}

func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

func zero32(b *[32]byte) {
	for i := range b {
		b[i] = 0
	}
}
