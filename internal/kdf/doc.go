// Package kdf implements the memory-hard key derivation with skip-on-revocation.
//
// # Overview
//
// A derived key is scrypt(secret, salt, 2^LogN, R, P, KeyLen) where salt is
// the domain followed by ":" and the decimal attempt index. Attempt 0 is tried
// first; whenever the fingerprint of a candidate is found in the revocation
// snapshot the engine moves on to the next attempt index. The scan has no upper
// bound, since a user may retire any number of passphrases for one domain.
//
// # Cost
//
// The scrypt parameters are a deliberate proof-of-work: one derivation should
// take seconds on commodity hardware. Params.Validate rejects any set below
// the configured floor before a single hash is computed.
package kdf
