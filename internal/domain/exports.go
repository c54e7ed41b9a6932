package domain

import (
	interfaces "xkcdget/internal/domain/interfaces"
	types "xkcdget/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Domain        = types.Domain
	Fingerprint   = types.Fingerprint
	Passphrase    = types.Passphrase
	AttemptIndex  = types.AttemptIndex
	MasterSecret  = types.MasterSecret
	DerivedKey    = types.DerivedKey
	RevocationSet = types.RevocationSet
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	RevocationStore   = interfaces.RevocationStore
	WordSource        = interfaces.WordSource
	Fingerprinter     = interfaces.Fingerprinter
	KeyDeriver        = interfaces.KeyDeriver
	PassphraseService = interfaces.PassphraseService
)

// NewRevocationSet builds a revocation snapshot from fps.
func NewRevocationSet(fps ...Fingerprint) RevocationSet { return types.NewRevocationSet(fps...) }
