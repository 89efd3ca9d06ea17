package mnemonikey

import "errors"

// ErrExpiryTooEarly is returned when constructing a Mnemonikey, if its
// creation and expiry times are conflicting.
var ErrExpiryTooEarly = errors.New("expiry time predates key creation offset")

// ErrCreationTooLate is returned when constructing a Mnemonikey, if its
// creation time is too far in the future to fit in the creation offset field.
var ErrCreationTooLate = errors.New("key creation time exceeds maximum representable offset")

// ErrCreationTooEarly is returned when constructing a Mnemonikey, if its
// creation time is before Epoch.
var ErrCreationTooEarly = errors.New("key creation time predates the mnemonikey epoch")

// ErrInvalidSeedLength is returned when constructing a Seed from entropy
// that isn't exactly SeedSize bytes.
var ErrInvalidSeedLength = errors.New("seed entropy must be exactly SeedSize bytes")

// ErrRandomSourceFailure is returned when the system CSPRNG fails to fill a
// requested buffer.
var ErrRandomSourceFailure = errors.New("failed to read from secure random source")
