// Package crypto exposes the small set of primitives xkcdget needs around the
// KDF itself.
//
// Contents
//
//   - Revocation fingerprints of derived keys, in the current hex encoding and
//     the legacy Z85 encoding (Fingerprint, FingerprintEncoding)
//   - Best-effort memory wiping for sensitive byte slices (Wipe)
//
// # Notes
//
// A fingerprint is a SHA-256 digest and is never reversible to the derived key
// or the master password. Callers should treat derived keys as secrets and
// Wipe them once the passphrase has been assembled.
package crypto
