package interfaces

import domaintypes "xkcdget/internal/domain/types"

// RevocationStore is the append-only log of revoked fingerprints.
type RevocationStore interface {
	// Load returns a snapshot of the log. A missing log is an empty set.
	Load() (domaintypes.RevocationSet, error)
	// Append durably adds fp to the log. Existing content is never rewritten.
	Append(fp domaintypes.Fingerprint) error
	// Path reports where the log lives, for diagnostics.
	Path() string
}

// WordSource supplies the vocabulary for each passphrase word slot.
type WordSource interface {
	// Slots returns the number of words a passphrase is made of.
	Slots() int
	// Words returns the ordered list the given slot chooses from.
	Words(slot int) []string
}
