package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tilinna/z85"

	"xkcdget/internal/domain"
)

// FingerprintEncoding selects how a key digest is rendered in the revocation log.
type FingerprintEncoding string

const (
	// HexSHA256 renders the SHA-256 of the key as 64 lowercase hex characters.
	HexSHA256 FingerprintEncoding = "hex"
	// Z85SHA256 renders the SHA-256 of the key as 40 Z85 characters.
	Z85SHA256 FingerprintEncoding = "z85"
)

// ParseFingerprintEncoding maps a configured name onto an encoding.
func ParseFingerprintEncoding(name string) (FingerprintEncoding, error) {
	switch enc := FingerprintEncoding(strings.ToLower(strings.TrimSpace(name))); enc {
	case HexSHA256, Z85SHA256:
		return enc, nil
	default:
		return "", fmt.Errorf("%w: unknown fingerprint encoding %q", domain.ErrConfig, name)
	}
}

// Fingerprint hashes key with SHA-256 and encodes the digest.
func (e FingerprintEncoding) Fingerprint(key []byte) domain.Fingerprint {
	sum := sha256.Sum256(key)
	defer Wipe(sum[:])

	switch e {
	case Z85SHA256:
		out := make([]byte, z85.EncodedLen(len(sum)))
		// A SHA-256 digest is a multiple of four bytes, so Encode cannot fail.
		_, _ = z85.Encode(out, sum[:])
		return domain.Fingerprint(out)
	default:
		return domain.Fingerprint(hex.EncodeToString(sum[:]))
	}
}

// Fingerprint returns the current-format (hex SHA-256) fingerprint of key.
func Fingerprint(key []byte) domain.Fingerprint {
	return HexSHA256.Fingerprint(key)
}

// Compile-time assertion that FingerprintEncoding implements domain.Fingerprinter.
var _ domain.Fingerprinter = FingerprintEncoding("")
