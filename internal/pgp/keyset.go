package pgp

import (
	"crypto/ed25519"
	"time"
)

// ecdhKDFParams encodes the ECDH KDF parameters field (RFC 4880bis §13.3):
// field length, reserved octet, hash algorithm and symmetric algorithm used
// for key-wrapping during actual ECDH decryption. Mnemonikey never performs
// ECDH decryption itself, but a well-formed KDF field is required for the
// encryption subkey to be usable by ordinary OpenPGP implementations.
func ecdhKDFParams() []byte {
	return []byte{0x03, 0x01, hashAlgoSHA256, symAlgoAES128}
}

func buildPublicKeyBody(created time.Time, algo byte, oid []byte, point [32]byte, kdfParams []byte) []byte {
	body := []byte{0x04}
	body = append(body, be32Time(created)...)
	body = append(body, algo)
	body = append(body, byte(len(oid)))
	body = append(body, oid...)

	native := append([]byte{nativePointPrefix}, point[:]...)
	body = append(body, mpiEncode(native)...)

	if kdfParams != nil {
		body = append(body, kdfParams...)
	}
	return body
}

func buildSecretKeyBody(publicBody, secretScalar, password []byte) ([]byte, error) {
	secretMPI := mpiEncode(secretScalar)
	if password == nil {
		return append(append([]byte{}, publicBody...), unencryptedSecretMaterial(secretMPI)...), nil
	}
	encrypted, err := encryptSecretMaterial(secretMPI, password)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, publicBody...), encrypted...), nil
}

// PrimaryKey is the Ed25519 certification-and-signing master key.
type PrimaryKey struct {
	Created time.Time
	seed    [32]byte
	Public  ed25519.PublicKey
}

// NewPrimaryKey builds a primary key from 32 bytes of role-expanded Ed25519
// seed material (component F's RoleSign output).
func NewPrimaryKey(created time.Time, material [32]byte) *PrimaryKey {
	priv := ed25519.NewKeyFromSeed(material[:])
	return &PrimaryKey{
		Created: created,
		seed:    material,
		Public:  priv.Public().(ed25519.PublicKey),
	}
}

func (k *PrimaryKey) privateKey() ed25519.PrivateKey {
	return ed25519.NewKeyFromSeed(k.seed[:])
}

func (k *PrimaryKey) publicKeyBody() []byte {
	var point [32]byte
	copy(point[:], k.Public)
	return buildPublicKeyBody(k.Created, pubAlgoEdDSA, oidEd25519, point, nil)
}

// FingerprintV4 returns the version-4 fingerprint of this key.
func (k *PrimaryKey) FingerprintV4() [20]byte {
	return fingerprintV4(k.publicKeyBody())
}

// KeyID returns the low 8 bytes of the fingerprint.
func (k *PrimaryKey) KeyID() []byte {
	fp := k.FingerprintV4()
	return keyID(fp)
}

func (k *PrimaryKey) publicKeyPacket() []byte {
	return framePacket(tagPublicKey, k.publicKeyBody())
}

func (k *PrimaryKey) secretKeyPacket(password []byte) ([]byte, error) {
	body, err := buildSecretKeyBody(k.publicKeyBody(), k.seed[:], password)
	if err != nil {
		return nil, err
	}
	return framePacket(tagSecretKey, body), nil
}

func (k *PrimaryKey) zero() {
	zero32(&k.seed)
}

// ECDHSubkey is the Curve25519 encryption subkey, always present in a
// generated key set.
type ECDHSubkey struct {
	Created time.Time
	secret  [32]byte
	Public  [32]byte
}

// NewECDHSubkey builds an encryption subkey from 32 bytes of role-expanded
// material (component F's RoleEncrypt output), clamping it per RFC 7748.
func NewECDHSubkey(created time.Time, material [32]byte) (*ECDHSubkey, error) {
	clamped := clampCurve25519(material)
	pub, err := curve25519PublicKey(clamped)
	if err != nil {
		return nil, err
	}
	return &ECDHSubkey{Created: created, secret: clamped, Public: pub}, nil
}

func (k *ECDHSubkey) publicKeyBody() []byte {
	return buildPublicKeyBody(k.Created, pubAlgoECDH, oidCurve25519, k.Public, ecdhKDFParams())
}

// FingerprintV4 returns the version-4 fingerprint of this subkey.
func (k *ECDHSubkey) FingerprintV4() [20]byte {
	return fingerprintV4(k.publicKeyBody())
}

func (k *ECDHSubkey) publicSubkeyPacket() []byte {
	return framePacket(tagPublicSubkey, k.publicKeyBody())
}

func (k *ECDHSubkey) secretSubkeyPacket(password []byte) ([]byte, error) {
	body, err := buildSecretKeyBody(k.publicKeyBody(), k.secret[:], password)
	if err != nil {
		return nil, err
	}
	return framePacket(tagSecretSubkey, body), nil
}

func (k *ECDHSubkey) zero() {
	zero32(&k.secret)
}

// EdDSASubkey is an Ed25519 subkey used for the optional authentication and
// signing roles.
type EdDSASubkey struct {
	Created time.Time
	seed    [32]byte
	Public  ed25519.PublicKey
}

// NewEdDSASubkey builds an Ed25519 subkey from 32 bytes of role-expanded
// seed material.
func NewEdDSASubkey(created time.Time, material [32]byte) *EdDSASubkey {
	priv := ed25519.NewKeyFromSeed(material[:])
	return &EdDSASubkey{Created: created, seed: material, Public: priv.Public().(ed25519.PublicKey)}
}

func (k *EdDSASubkey) publicKeyBody() []byte {
	var point [32]byte
	copy(point[:], k.Public)
	return buildPublicKeyBody(k.Created, pubAlgoEdDSA, oidEd25519, point, nil)
}

// FingerprintV4 returns the version-4 fingerprint of this subkey.
func (k *EdDSASubkey) FingerprintV4() [20]byte {
	return fingerprintV4(k.publicKeyBody())
}

func (k *EdDSASubkey) publicSubkeyPacket() []byte {
	return framePacket(tagPublicSubkey, k.publicKeyBody())
}

func (k *EdDSASubkey) secretSubkeyPacket(password []byte) ([]byte, error) {
	body, err := buildSecretKeyBody(k.publicKeyBody(), k.seed[:], password)
	if err != nil {
		return nil, err
	}
	return framePacket(tagSecretSubkey, body), nil
}

func (k *EdDSASubkey) zero() {
	zero32(&k.seed)
}

// KeySet is a complete generated identity: a primary certification-and-
// signing key, a required encryption subkey, and optional authentication
// and signing subkeys.
type KeySet struct {
	MasterKey            *PrimaryKey
	EncryptionSubkey      *ECDHSubkey
	AuthenticationSubkey  *EdDSASubkey
	SigningSubkey         *EdDSASubkey
	UserID                string
	Expiry                time.Time
}

// SubkeyOptions selects which optional subkeys DeriveKeySet includes.
type SubkeyOptions struct {
	IncludeAuthSubkey    bool
	IncludeSigningSubkey bool
}

// DeriveKeySet runs the full component F + G pipeline: stretching seed,
// expanding per-role material over HKDF, and constructing the primary key
// and subkeys it backs.
func DeriveKeySet(seed []byte, created time.Time, creationOffset uint64, userID string, expiry time.Time, opts SubkeyOptions) (*KeySet, error) {
	root := StretchSeed(seed)
	defer zero32(&root)

	signMaterial, err := ExpandRole(root, RoleSign, creationOffset)
	if err != nil {
		return nil, err
	}
	master := NewPrimaryKey(created, signMaterial)
	zero32(&signMaterial)

	encMaterial, err := ExpandRole(root, RoleEncrypt, creationOffset)
	if err != nil {
		return nil, err
	}
	encSub, err := NewECDHSubkey(created, encMaterial)
	zero32(&encMaterial)
	if err != nil {
		return nil, err
	}

	ks := &KeySet{
		MasterKey:        master,
		EncryptionSubkey: encSub,
		UserID:           userID,
		Expiry:           expiry,
	}

	if opts.IncludeAuthSubkey {
		authMaterial, err := ExpandRole(root, RoleAuth, creationOffset)
		if err != nil {
			return nil, err
		}
		ks.AuthenticationSubkey = NewEdDSASubkey(created, authMaterial)
		zero32(&authMaterial)
	}

	if opts.IncludeSigningSubkey {
		signSubMaterial, err := ExpandRole(root, "sign-subkey", creationOffset)
		if err != nil {
			return nil, err
		}
		ks.SigningSubkey = NewEdDSASubkey(created, signSubMaterial)
		zero32(&signSubMaterial)
	}

	return ks, nil
}

// Zero destroys all secret scalars held by the key set. Callers must call
// this once packet encoding is finished.
func (ks *KeySet) Zero() {
	ks.MasterKey.zero()
	ks.EncryptionSubkey.zero()
	if ks.AuthenticationSubkey != nil {
		ks.AuthenticationSubkey.zero()
	}
	if ks.SigningSubkey != nil {
		ks.SigningSubkey.zero()
	}
}

// EncodePackets serializes the full transferable secret key: primary secret
// key, user ID, self-certification, and each subkey's secret key packet
// plus binding signature. password may be nil to leave secret material
// unencrypted.
func (ks *KeySet) EncodePackets(password []byte) ([]byte, error) {
	priv := ks.MasterKey.privateKey()

	var out []byte

	secretPrimary, err := ks.MasterKey.secretKeyPacket(password)
	if err != nil {
		return nil, err
	}
	out = append(out, secretPrimary...)

	out = append(out, framePacket(tagUserID, []byte(ks.UserID))...)

	cert, err := selfCertification(priv, ks.MasterKey.publicKeyBody(), ks.MasterKey.KeyID(), ks.MasterKey.Created, ks.UserID, ks.Expiry)
	if err != nil {
		return nil, err
	}
	out = append(out, cert...)

	subkeyBytes, err := ks.EncodeSubkeyPackets(password)
	if err != nil {
		return nil, err
	}
	out = append(out, subkeyBytes...)

	return out, nil
}

// EncodeSubkeyPackets serializes just the subkey secret-key packets and
// their binding signatures, without the primary secret key or self
// certification. This matches a recovery flow that re-derives only the
// subkeys against an already-known primary key.
func (ks *KeySet) EncodeSubkeyPackets(password []byte) ([]byte, error) {
	priv := ks.MasterKey.privateKey()
	masterBody := ks.MasterKey.publicKeyBody()

	var out []byte

	encSecret, err := ks.EncryptionSubkey.secretSubkeyPacket(password)
	if err != nil {
		return nil, err
	}
	out = append(out, encSecret...)

	encBinding, err := subkeyBinding(priv, masterBody, ks.EncryptionSubkey.publicKeyBody(), ks.MasterKey.KeyID(), ks.EncryptionSubkey.Created, FlagEncryptComm|FlagEncryptStorage, ks.Expiry)
	if err != nil {
		return nil, err
	}
	out = append(out, encBinding...)

	if ks.AuthenticationSubkey != nil {
		secret, err := ks.AuthenticationSubkey.secretSubkeyPacket(password)
		if err != nil {
			return nil, err
		}
		out = append(out, secret...)

		binding, err := subkeyBinding(priv, masterBody, ks.AuthenticationSubkey.publicKeyBody(), ks.MasterKey.KeyID(), ks.AuthenticationSubkey.Created, FlagAuth, ks.Expiry)
		if err != nil {
			return nil, err
		}
		out = append(out, binding...)
	}

	if ks.SigningSubkey != nil {
		secret, err := ks.SigningSubkey.secretSubkeyPacket(password)
		if err != nil {
			return nil, err
		}
		out = append(out, secret...)

		binding, err := subkeyBinding(priv, masterBody, ks.SigningSubkey.publicKeyBody(), ks.MasterKey.KeyID(), ks.SigningSubkey.Created, FlagSign, ks.Expiry)
		if err != nil {
			return nil, err
		}
		out = append(out, binding...)
	}

	return out, nil
}

// EncodePublicPackets serializes only the public halves of the key set,
// useful for publishing a certificate without any secret material.
func (ks *KeySet) EncodePublicPackets() ([]byte, error) {
	priv := ks.MasterKey.privateKey()
	masterBody := ks.MasterKey.publicKeyBody()

	var out []byte
	out = append(out, ks.MasterKey.publicKeyPacket()...)
	out = append(out, framePacket(tagUserID, []byte(ks.UserID))...)

	cert, err := selfCertification(priv, masterBody, ks.MasterKey.KeyID(), ks.MasterKey.Created, ks.UserID, ks.Expiry)
	if err != nil {
		return nil, err
	}
	out = append(out, cert...)

	out = append(out, ks.EncryptionSubkey.publicSubkeyPacket()...)
	encBinding, err := subkeyBinding(priv, masterBody, ks.EncryptionSubkey.publicKeyBody(), ks.MasterKey.KeyID(), ks.EncryptionSubkey.Created, FlagEncryptComm|FlagEncryptStorage, ks.Expiry)
	if err != nil {
		return nil, err
	}
	out = append(out, encBinding...)

	if ks.AuthenticationSubkey != nil {
		out = append(out, ks.AuthenticationSubkey.publicSubkeyPacket()...)
		binding, err := subkeyBinding(priv, masterBody, ks.AuthenticationSubkey.publicKeyBody(), ks.MasterKey.KeyID(), ks.AuthenticationSubkey.Created, FlagAuth, ks.Expiry)
		if err != nil {
			return nil, err
		}
		out = append(out, binding...)
	}

	if ks.SigningSubkey != nil {
		out = append(out, ks.SigningSubkey.publicSubkeyPacket()...)
		binding, err := subkeyBinding(priv, masterBody, ks.SigningSubkey.publicKeyBody(), ks.MasterKey.KeyID(), ks.SigningSubkey.Created, FlagSign, ks.Expiry)
		if err != nil {
			return nil, err
		}
		out = append(out, binding...)
	}

	return out, nil
}
