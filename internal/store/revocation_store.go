package store

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"xkcdget/internal/domain"
)

// RevocationFileStore keeps revoked fingerprints in a plain text file, one
// per line. The file is only ever appended to.
//
// There is no locking: two processes revoking at once both append, and a
// derivation already running will not see a revocation made after its
// snapshot was loaded.
type RevocationFileStore struct {
	path string
}

// NewRevocationFileStore returns a store backed by the file at path.
func NewRevocationFileStore(path string) *RevocationFileStore {
	return &RevocationFileStore{path: path}
}

// Path returns the backing file path.
func (s *RevocationFileStore) Path() string { return s.path }

// Load reads a snapshot of every whitespace-separated fingerprint in the file.
// A missing file is an empty set.
func (s *RevocationFileStore) Load() (domain.RevocationSet, error) {
	b, err := ReadFile(s.path)
	if err != nil {
		return domain.RevocationSet{}, fmt.Errorf("reading revocation list %s: %w", s.path, err)
	}
	fields := strings.Fields(string(b))
	fps := make([]domain.Fingerprint, len(fields))
	for i, f := range fields {
		fps[i] = domain.Fingerprint(f)
	}
	return domain.NewRevocationSet(fps...), nil
}

// Append adds fp as a new line, creating the file if needed, and syncs it to
// disk before returning.
func (s *RevocationFileStore) Append(fp domain.Fingerprint) error {
	if fp == "" || strings.ContainsFunc(fp.String(), unicode.IsSpace) {
		return fmt.Errorf("%w: malformed fingerprint %q", domain.ErrInvariant, fp)
	}
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("opening revocation list %s: %w", s.path, err)
	}
	if _, err := f.WriteString(fp.String() + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("appending to revocation list %s: %w", s.path, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("syncing revocation list %s: %w", s.path, err)
	}
	return f.Close()
}

// Exists reports whether the backing file is present.
func (s *RevocationFileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Compile-time assertion that RevocationFileStore implements domain.RevocationStore.
var _ domain.RevocationStore = (*RevocationFileStore)(nil)
