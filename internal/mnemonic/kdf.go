package mnemonic

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters mandated for the phrase-level PasswordKDF (component D).
const (
	passwordKDFMemoryKiB   uint32 = 64 * 1024
	passwordKDFIterations  uint32 = 8
	passwordKDFParallelism uint8  = 4
	passwordKDFOutputLen   uint32 = 17
)

// PasswordMaskLen is the size of the entropy-XOR mask derived from a password.
const PasswordMaskLen = 16

// PasswordKDF stretches password under salt into a 16-byte entropy mask and
// a 4-bit verification nibble (component D), using Argon2id with the
// mandated parameters (memory=64 MiB, iterations=8, parallelism=4).
func PasswordKDF(password, salt []byte) (mask [PasswordMaskLen]byte, verify byte, err error) {
	out := argon2.IDKey(password, salt, passwordKDFIterations, passwordKDFMemoryKiB, passwordKDFParallelism, passwordKDFOutputLen)
	copy(mask[:], out[:PasswordMaskLen])
	verify = out[PasswordMaskLen] & 0x0F
	zero(out)
	return mask, verify, nil
}

// EncryptedPhraseSalt derives the salt used by the encrypted mnemonic codec
// path (§4.E "Encoding (encrypted)" step 2) from the public header bits, so
// that the resulting phrase length never depends on the password.
func EncryptedPhraseSalt(version uint64, creationOffset uint64) []byte {
	h := sha256.New()
	h.Write([]byte("mnemonikey-s2k"))
	var versionBytes [8]byte
	binary.BigEndian.PutUint64(versionBytes[:], version)
	h.Write(versionBytes[:])
	var offsetBytes [8]byte
	binary.BigEndian.PutUint64(offsetBytes[:], creationOffset)
	h.Write(offsetBytes[:])
	sum := h.Sum(nil)
	return sum[:16]
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
