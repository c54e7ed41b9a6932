// Package passphrase turns a master password and a domain into a passphrase.
//
// It loads one revocation snapshot, derives the first non-revoked key, picks
// one word per slot through the unbiased selector, and assembles the
// capitalized words plus the format suffix. Revoke derives the same key and
// appends its fingerprint to the revocation store, so the next Generate for
// that domain moves on to the next attempt index.
package passphrase
