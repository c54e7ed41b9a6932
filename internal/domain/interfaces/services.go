package interfaces

import domaintypes "xkcdget/internal/domain/types"

// Fingerprinter computes the revocation identity of a derived key.
type Fingerprinter interface {
	Fingerprint(key []byte) domaintypes.Fingerprint
}

// KeyDeriver produces the first derived key whose fingerprint is not revoked.
type KeyDeriver interface {
	Derive(
		secret domaintypes.MasterSecret,
		domain domaintypes.Domain,
		revoked domaintypes.RevocationSet,
	) (domaintypes.DerivedKey, error)
	// KeyLen is the length in bytes of every derived key.
	KeyLen() int
}

// PassphraseService generates and revokes passphrases.
type PassphraseService interface {
	Generate(secret domaintypes.MasterSecret, domain domaintypes.Domain) (domaintypes.Passphrase, error)
	Revoke(secret domaintypes.MasterSecret, domain domaintypes.Domain) (domaintypes.Fingerprint, error)
}
