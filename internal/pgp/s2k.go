package pgp

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
)

// s2kSaltLen and s2kIVLen are the RFC 4880 §3.7.1.3 salt and AES block sizes
// used by the iterated-and-salted S2K secret-material encryption.
const (
	s2kSaltLen = 8
	s2kIVLen   = 16

	// s2kSpecifierIteratedSalted is S2K type 3.
	s2kSpecifierIteratedSalted = 3

	// s2kCountCoded is the RFC 4880 §3.7.1.3 coded byte for the smallest
	// count >= 65011712 octets: (16 + (0xFF & 15)) << ((0xFF >> 4) + 6).
	s2kCountCoded byte = 0xFF

	// usageUnencrypted and usageS2KChecksummed are the secret-material
	// usage octets this package produces.
	usageUnencrypted     byte = 0x00
	usageS2KChecksummed  byte = 0xFE
)

// s2kDecodedCount expands the coded iteration count byte into an octet count.
func s2kDecodedCount(c byte) int {
	return (16 + int(c&15)) << (uint(c>>4) + 6)
}

// s2kDeriveKey implements the iterated-and-salted String-to-Key algorithm as
// actually used by GnuPG: salt and passphrase are concatenated and hashed
// repeatedly until count octets have been fed to the hash.
func s2kDeriveKey(passphrase, salt []byte, count int) []byte {
	h := sha256.New()
	full := make([]byte, 0, len(salt)+len(passphrase))
	full = append(full, salt...)
	full = append(full, passphrase...)

	iterations := count / len(full)
	for i := 0; i < iterations; i++ {
		h.Write(full)
	}
	tail := count - iterations*len(full)
	h.Write(full[:tail])
	return h.Sum(nil)
}

// encryptSecretMaterial wraps secretMPI (the MPI-encoded secret scalar) in
// the S2K-encrypted secret-material form described in §4.G: usage octet
// 0xFE, AES-256 in CFB mode, a fresh random salt and IV, and a SHA-1
// checksum of the plaintext appended before encryption.
func encryptSecretMaterial(secretMPI, password []byte) ([]byte, error) {
	salt := make([]byte, s2kSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, ErrSerialization
	}
	iv := make([]byte, s2kIVLen)
	if _, err := rand.Read(iv); err != nil {
		return nil, ErrSerialization
	}

	key := s2kDeriveKey(password, salt, s2kDecodedCount(s2kCountCoded))

	checksum := sha1.Sum(secretMPI)
	plaintext := append(append([]byte{}, secretMPI...), checksum[:]...)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrSerialization
	}
	stream := cipher.NewCFBEncrypter(block, iv)
	ciphertext := make([]byte, len(plaintext))
	stream.XORKeyStream(ciphertext, plaintext)

	out := []byte{usageS2KChecksummed, symAlgoAES256, s2kSpecifierIteratedSalted, hashAlgoSHA256}
	out = append(out, salt...)
	out = append(out, s2kCountCoded)
	out = append(out, iv...)
	out = append(out, ciphertext...)
	return out, nil
}

// unencryptedSecretMaterial wraps secretMPI in the plain (usage=0) secret
// material form: a two-octet additive checksum of the MPI bytes.
func unencryptedSecretMaterial(secretMPI []byte) []byte {
	chk := checksum16(secretMPI)
	out := append([]byte{usageUnencrypted}, secretMPI...)
	return append(out, byte(chk>>8), byte(chk))
}
