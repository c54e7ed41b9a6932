package types

// Domain identifies the account or service a passphrase belongs to.
// It is used verbatim as KDF salt input: case and whitespace are significant.
type Domain string

// String returns the string form of the domain.
func (d Domain) String() string { return string(d) }

// Bytes returns the domain as raw salt bytes.
func (d Domain) Bytes() []byte { return []byte(d) }

// Fingerprint is the one-way revocation identity of a derived key.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// Passphrase is the final generated secret handed to the user.
type Passphrase string

// String returns the string form of the passphrase.
func (p Passphrase) String() string { return string(p) }

// AttemptIndex numbers the salted variants tried by the key derivation,
// starting at zero and incremented once per revoked candidate.
type AttemptIndex uint64
