package types

// MasterSecret is the user's master password. It is held in memory only for
// the duration of one operation and must never be logged or persisted.
type MasterSecret []byte

// DerivedKey is the first non-revoked KDF output for a (secret, domain) pair.
type DerivedKey struct {
	Bytes       []byte
	Attempt     AttemptIndex
	Fingerprint Fingerprint
}
