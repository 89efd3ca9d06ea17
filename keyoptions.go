package mnemonikey

import "time"

// KeyOptions configures the PGP identity a Mnemonikey derives. All fields
// are optional; the zero value produces an identity with an empty user ID,
// no expiration, and only the mandatory encryption subkey.
type KeyOptions struct {
	// Name is the user ID's display name, e.g. "Jane Doe".
	Name string

	// Email is the user ID's email address, e.g. "jane@example.com". If
	// empty, the user ID is Name, followed by the parenthesized Comment if
	// one is set.
	Email string

	// Comment is an optional annotation rendered in parentheses between
	// Name and Email, e.g. "work". Ignored if Name is empty.
	Comment string

	// Expiry is the time after which the generated keys should be
	// considered expired. Zero means no expiration.
	Expiry time.Time

	// Armor, if true, wraps binary PGP output in ASCII armor.
	Armor bool

	// IncludeAuthSubkey adds an Ed25519 authentication subkey, suitable
	// for SSH or other non-PGP authentication uses.
	IncludeAuthSubkey bool

	// IncludeSigningSubkey adds a dedicated Ed25519 signing subkey,
	// separate from the master key's own signing capability.
	IncludeSigningSubkey bool
}

// UserID formats the configured name, comment and email as a PGP user ID:
// "Name (Comment) <Email>", "Name <Email>", "Name (Comment)", or just Name,
// depending on which fields are set.
func (opts *KeyOptions) UserID() string {
	if opts == nil {
		return ""
	}
	id := opts.Name
	if opts.Comment != "" && opts.Name != "" {
		id += " (" + opts.Comment + ")"
	}
	if opts.Email != "" {
		id += " <" + opts.Email + ">"
	}
	return id
}
