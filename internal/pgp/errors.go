package pgp

import "errors"

// ErrDerivationFailure covers Argon2id/HKDF failures (component F), treated
// as fatal per the error taxonomy in §7 of the specification.
var ErrDerivationFailure = errors.New("pgp: key derivation failed")

// ErrSerialization covers MPI-too-large or unexpected packet-size conditions
// (component G), which indicate a bug rather than bad input.
var ErrSerialization = errors.New("pgp: packet serialization failed")
