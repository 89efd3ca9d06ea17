package pgp

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// Signature subpacket types used by this package (RFC 4880 §5.2.3.1).
const (
	subpacketSignatureCreationTime byte = 2
	subpacketKeyExpirationTime     byte = 9
	subpacketPreferredSymAlgos     byte = 11
	subpacketIssuerKeyID           byte = 16
	subpacketPreferredHashAlgos    byte = 21
	subpacketPreferredCompression  byte = 22
	subpacketKeyFlags              byte = 27
	subpacketFeatures               byte = 30
)

// Key flags (RFC 4880 §5.2.3.21) this package assigns to certification,
// signing, encryption and authentication keys.
const (
	FlagCertify        byte = 0x01
	FlagSign           byte = 0x02
	FlagEncryptComm    byte = 0x04
	FlagEncryptStorage byte = 0x08
	FlagAuth           byte = 0x20
)

const (
	sigTypePositiveCertification byte = 0x13
	sigTypeSubkeyBinding          byte = 0x18
)

type subpacket struct {
	typ  byte
	data []byte
}

// subpacketLengthBytes encodes a subpacket body length using the same
// variable-width scheme as new-format packet body lengths (RFC 4880
// §5.2.3.1).
func subpacketLengthBytes(n int) []byte {
	switch {
	case n < 192:
		return []byte{byte(n)}
	case n < 8384:
		adjusted := n - 192
		return []byte{byte((adjusted >> 8) + 192), byte(adjusted)}
	default:
		return []byte{0xFF, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}
	}
}

func encodeSubpackets(subs []subpacket) []byte {
	var out []byte
	for _, sp := range subs {
		out = append(out, subpacketLengthBytes(len(sp.data)+1)...)
		out = append(out, sp.typ)
		out = append(out, sp.data...)
	}
	return out
}

func be32(v uint32) []byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return b[:]
}

func be32Time(t time.Time) []byte {
	return be32(uint32(t.Unix()))
}

// keyHashPrefix reproduces the public-key portion of the RFC 4880 §5.2.4
// signature hash: a 0x99 tag, the body's big-endian 16-bit length, and the
// body itself.
func keyHashPrefix(body []byte) []byte {
	out := []byte{0x99, byte(len(body) >> 8), byte(len(body))}
	return append(out, body...)
}

// useridHashPrefix reproduces the user ID portion of the certification hash
// preimage: a 0xB4 tag, a big-endian 32-bit length, then the UTF-8 bytes.
func useridHashPrefix(userID string) []byte {
	data := []byte(userID)
	out := []byte{0xB4, byte(len(data) >> 24), byte(len(data) >> 16), byte(len(data) >> 8), byte(len(data))}
	return append(out, data...)
}

// signPacket builds a version-4 EdDSA signature packet over prehashed
// (the concatenated 0x99/0xB4 key/userID preimages) plus the hashed
// subpacket area, following the RFC 4880 §5.2.4 trailer-hashing rule, and
// appends a single issuer-key-ID unhashed subpacket.
func signPacket(priv ed25519.PrivateKey, issuerKeyID []byte, sigType byte, hashedSubs []subpacket, prehashed []byte) ([]byte, error) {
	hashedBytes := encodeSubpackets(hashedSubs)

	head := []byte{0x04, sigType, pubAlgoEdDSA, hashAlgoSHA256}
	head = append(head, byte(len(hashedBytes)>>8), byte(len(hashedBytes)))
	hashedMaterial := append(append([]byte{}, head...), hashedBytes...)

	trailer := []byte{0x04, 0xFF,
		byte(len(hashedMaterial) >> 24), byte(len(hashedMaterial) >> 16),
		byte(len(hashedMaterial) >> 8), byte(len(hashedMaterial)),
	}

	h := sha256.New()
	h.Write(prehashed)
	h.Write(hashedMaterial)
	h.Write(trailer)
	digest := h.Sum(nil)

	unhashedBytes := encodeSubpackets([]subpacket{{typ: subpacketIssuerKeyID, data: issuerKeyID}})

	body := append([]byte{}, hashedMaterial...)
	body = append(body, byte(len(unhashedBytes)>>8), byte(len(unhashedBytes)))
	body = append(body, unhashedBytes...)
	body = append(body, digest[0], digest[1])

	sig := ed25519.Sign(priv, digest)
	if len(sig) != ed25519.SignatureSize {
		return nil, ErrSerialization
	}
	body = append(body, mpiEncode(sig[:32])...)
	body = append(body, mpiEncode(sig[32:])...)

	return framePacket(tagSignature, body), nil
}

// selfCertification builds the positive-certification signature binding
// userID to the primary key, carrying the primary key's capability flags
// and algorithm preferences.
func selfCertification(priv ed25519.PrivateKey, masterPublicBody []byte, keyID []byte, created time.Time, userID string, expiry time.Time) ([]byte, error) {
	hashedSubs := []subpacket{
		{typ: subpacketSignatureCreationTime, data: be32Time(created)},
		{typ: subpacketKeyFlags, data: []byte{FlagCertify | FlagSign}},
		{typ: subpacketPreferredHashAlgos, data: []byte{hashAlgoSHA256}},
		{typ: subpacketPreferredSymAlgos, data: []byte{symAlgoAES256}},
		{typ: subpacketPreferredCompression, data: []byte{compressionNone}},
		{typ: subpacketFeatures, data: []byte{0x01}},
	}
	if !expiry.IsZero() {
		hashedSubs = append(hashedSubs, subpacket{
			typ:  subpacketKeyExpirationTime,
			data: be32(uint32(expiry.Unix() - created.Unix())),
		})
	}

	prehashed := append(keyHashPrefix(masterPublicBody), useridHashPrefix(userID)...)
	return signPacket(priv, keyID, sigTypePositiveCertification, hashedSubs, prehashed)
}

// subkeyBinding builds the subkey-binding signature over masterPublicBody
// and subkeyPublicBody, asserting flags as the subkey's capabilities.
func subkeyBinding(priv ed25519.PrivateKey, masterPublicBody, subkeyPublicBody []byte, keyID []byte, created time.Time, flags byte, expiry time.Time) ([]byte, error) {
	hashedSubs := []subpacket{
		{typ: subpacketSignatureCreationTime, data: be32Time(created)},
		{typ: subpacketKeyFlags, data: []byte{flags}},
	}
	if !expiry.IsZero() {
		hashedSubs = append(hashedSubs, subpacket{
			typ:  subpacketKeyExpirationTime,
			data: be32(uint32(expiry.Unix() - created.Unix())),
		})
	}

	prehashed := append(keyHashPrefix(masterPublicBody), keyHashPrefix(subkeyPublicBody)...)
	return signPacket(priv, keyID, sigTypeSubkeyBinding, hashedSubs, prehashed)
}
