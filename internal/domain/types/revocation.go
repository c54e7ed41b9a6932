package types

// RevocationSet is an immutable snapshot of every fingerprint ever revoked.
// Duplicates in the backing log collapse into a single entry.
type RevocationSet struct {
	m map[Fingerprint]struct{}
}

// NewRevocationSet builds a set from the given fingerprints.
func NewRevocationSet(fps ...Fingerprint) RevocationSet {
	m := make(map[Fingerprint]struct{}, len(fps))
	for _, fp := range fps {
		if fp == "" {
			continue
		}
		m[fp] = struct{}{}
	}
	return RevocationSet{m: m}
}

// Contains reports whether fp has been revoked.
func (s RevocationSet) Contains(fp Fingerprint) bool {
	_, ok := s.m[fp]
	return ok
}

// Len returns the number of distinct revoked fingerprints.
func (s RevocationSet) Len() int { return len(s.m) }
