// Package store provides file-based persistence for xkcdget.
//
// Only two things ever touch disk: the revocation list, an append-only text
// file of fingerprints (RevocationFileStore), and the optional YAML config,
// which is replaced atomically via a temp file and rename (WriteFile).
//
// Missing files are never an error on read; callers get an empty result.
// Stored files typically live under the user's home directory, but every path
// is injected by the caller.
package store
