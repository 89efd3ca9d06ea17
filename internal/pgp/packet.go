// Package pgp builds canonical OpenPGP transferable secret key packet
// streams (component G): a primary Ed25519 certification/signing key, a
// UTF-8 user ID, self-certification and subkey-binding signatures, and one
// or more Curve25519/Ed25519 subkeys, optionally wrapped with a
// password-derived S2K encryption of the secret material.
//
// Packets are framed and hashed by hand rather than through a generic
// OpenPGP library, so that the exact byte layout required for
// cross-implementation fingerprint agreement (RFC 4880 §5.2.4, §12.2) is
// fully under our control.
package pgp

import (
	"crypto/sha1"
	"math/bits"
)

// OpenPGP packet tags used by this package.
const (
	tagSecretKey    byte = 5
	tagUserID       byte = 13
	tagPublicKey    byte = 6
	tagPublicSubkey byte = 14
	tagSecretSubkey byte = 7
	tagSignature    byte = 2
)

// Public-key algorithm IDs (RFC 4880bis).
const (
	pubAlgoEdDSA byte = 22
	pubAlgoECDH  byte = 18
)

// Hash and symmetric-cipher algorithm IDs referenced by this package.
const (
	hashAlgoSHA256   byte = 8
	symAlgoAES128    byte = 7
	symAlgoAES256    byte = 9
	compressionNone  byte = 0
)

// oidEd25519 is the registered OID for Ed25519 (1.3.6.1.4.1.11591.15.1).
var oidEd25519 = []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0xDA, 0x47, 0x0F, 0x01}

// oidCurve25519 is the registered OID for Curve25519 (1.3.6.1.4.1.3029.1.5.1).
var oidCurve25519 = []byte{0x2B, 0x06, 0x01, 0x04, 0x01, 0x97, 0x55, 0x01, 0x05, 0x01}

// nativePointPrefix marks an EdDSA/ECDH public point as being in native
// (non-compressed-SEC1) form, per RFC 4880bis §13.3.
const nativePointPrefix = 0x40

// mpiEncode encodes data as an OpenPGP multiprecision integer: a two-byte
// big-endian bit count followed by the minimal big-endian byte
// representation (leading zero bytes stripped).
func mpiEncode(data []byte) []byte {
	trimmed := data
	for len(trimmed) > 0 && trimmed[0] == 0 {
		trimmed = trimmed[1:]
	}
	bitLen := 0
	if len(trimmed) > 0 {
		bitLen = (len(trimmed)-1)*8 + bits.Len8(trimmed[0])
	}
	out := make([]byte, 2+len(trimmed))
	out[0] = byte(bitLen >> 8)
	out[1] = byte(bitLen)
	copy(out[2:], trimmed)
	return out
}

// packetHeader returns a new-format OpenPGP packet header for tag with the
// given body length (RFC 4880 §4.2.2).
func packetHeader(tag byte, bodyLen int) []byte {
	header := []byte{0xC0 | tag}
	switch {
	case bodyLen < 192:
		header = append(header, byte(bodyLen))
	case bodyLen < 8384:
		adjusted := bodyLen - 192
		header = append(header, byte((adjusted>>8)+192), byte(adjusted))
	default:
		header = append(header,
			0xFF,
			byte(bodyLen>>24), byte(bodyLen>>16), byte(bodyLen>>8), byte(bodyLen),
		)
	}
	return header
}

// framePacket wraps body in a new-format packet header for tag.
func framePacket(tag byte, body []byte) []byte {
	return append(packetHeader(tag, len(body)), body...)
}

// fingerprintV4 computes the RFC 4880 §12.2 version-4 fingerprint: the
// SHA-1 hash of 0x99 || big-endian 16-bit body length || public key body.
func fingerprintV4(publicKeyBody []byte) [20]byte {
	h := sha1.New()
	h.Write([]byte{0x99, byte(len(publicKeyBody) >> 8), byte(len(publicKeyBody))})
	h.Write(publicKeyBody)
	var out [20]byte
	copy(out[:], h.Sum(nil))
	return out
}

// keyID returns the low 8 bytes of a version-4 fingerprint.
func keyID(fingerprint [20]byte) []byte {
	return fingerprint[12:20]
}

// checksum16 is the RFC 4880 §5.5.3 two-octet checksum: the sum of the
// plaintext secret-material octets, modulo 65536.
func checksum16(data []byte) uint16 {
	var sum uint16
	for _, b := range data {
		sum += uint16(b)
	}
	return sum
}
