package passphrase

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
	"xkcdget/internal/selector"
	"xkcdget/internal/wordlist"
)

const (
	// DefaultPINDigits is the PIN length used when none is given.
	DefaultPINDigits = 4
	maxPINDigits     = 64
)

// Config carries everything a Service needs besides its collaborators.
type Config struct {
	Layout      selector.Layout
	Suffix      string
	ExpectedLen int // pinned word list length, checked in New
	Logger      *zerolog.Logger
}

// Service generates and revokes passphrases.
type Service struct {
	store  domain.RevocationStore
	kdf    domain.KeyDeriver
	words  domain.WordSource
	layout selector.Layout
	suffix string
	log    zerolog.Logger
}

// New checks the word source and layout and returns a service. All
// configuration errors surface here, before any derivation work.
func New(store domain.RevocationStore, kdf domain.KeyDeriver, words domain.WordSource, cfg Config) (*Service, error) {
	if err := wordlist.Check(words, cfg.ExpectedLen); err != nil {
		return nil, err
	}
	if len(cfg.Layout) != words.Slots() {
		return nil, fmt.Errorf("%w: layout has %d windows for %d words",
			domain.ErrConfig, len(cfg.Layout), words.Slots())
	}
	for slot, w := range cfg.Layout {
		need, err := selector.BytesFor(len(words.Words(slot)))
		if err != nil {
			return nil, err
		}
		if w.Width != need {
			return nil, fmt.Errorf("%w: slot %d window is %d bytes, list needs %d",
				domain.ErrConfig, slot, w.Width, need)
		}
	}
	if size, keyLen := cfg.Layout.Size(), kdf.KeyLen(); size > keyLen {
		return nil, fmt.Errorf("%w: layout needs %d key bytes, KDF derives %d",
			domain.ErrConfig, size, keyLen)
	}
	s := &Service{
		store:  store,
		kdf:    kdf,
		words:  words,
		layout: cfg.Layout,
		suffix: cfg.Suffix,
		log:    zerolog.Nop(),
	}
	if cfg.Logger != nil {
		s.log = *cfg.Logger
	}
	return s, nil
}

// derive loads one revocation snapshot and derives the first non-revoked key.
func (s *Service) derive(secret domain.MasterSecret, d domain.Domain) (domain.DerivedKey, error) {
	revoked, err := s.store.Load()
	if err != nil {
		return domain.DerivedKey{}, err
	}
	s.log.Debug().Int("revoked", revoked.Len()).Str("path", s.store.Path()).Msg("loaded revocation list")
	return s.kdf.Derive(secret, d, revoked)
}

// Generate derives the passphrase for d.
func (s *Service) Generate(secret domain.MasterSecret, d domain.Domain) (domain.Passphrase, error) {
	key, err := s.derive(secret, d)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(key.Bytes)

	words, err := s.choose(secret, d, key)
	if err != nil {
		return "", err
	}
	return Assemble(words, s.suffix)
}

// choose picks one word per slot from the key's disjoint windows.
func (s *Service) choose(secret domain.MasterSecret, d domain.Domain, key domain.DerivedKey) ([]string, error) {
	words := make([]string, s.words.Slots())
	for slot := range words {
		window, err := s.layout.Slice(key.Bytes, slot)
		if err != nil {
			return nil, err
		}
		list := s.words.Words(slot)
		idx, stats, err := selector.Select(window, len(list), selector.Context{
			Key:     key.Bytes,
			Domain:  d,
			Secret:  secret,
			Slot:    uint8(slot),
			Attempt: key.Attempt,
		})
		if err != nil {
			return nil, fmt.Errorf("choosing word %d: %w", slot, err)
		}
		s.log.Debug().
			Int("slot", slot).
			Int("tries", stats.Tries).
			Int("rerolls", stats.Rerolls).
			Msg("index fits")
		words[slot] = list[idx]
	}
	return words, nil
}

// Revoke derives the current key for d, appends its fingerprint to the
// revocation store and returns it for auditing.
func (s *Service) Revoke(secret domain.MasterSecret, d domain.Domain) (domain.Fingerprint, error) {
	key, err := s.derive(secret, d)
	if err != nil {
		return "", err
	}
	crypto.Wipe(key.Bytes)

	if err := s.store.Append(key.Fingerprint); err != nil {
		return "", err
	}
	s.log.Info().
		Uint64("attempt", uint64(key.Attempt)).
		Str("fingerprint", key.Fingerprint.String()).
		Msg("revoked")
	return key.Fingerprint, nil
}

// Entropy returns the fractional bits contributed by each slot and in total.
func (s *Service) Entropy() (perSlot []float64, total float64) {
	perSlot = make([]float64, s.words.Slots())
	for slot := range perSlot {
		perSlot[slot] = math.Log2(float64(len(s.words.Words(slot))))
		total += perSlot[slot]
	}
	return perSlot, total
}

// PIN validates the requested digit count. Choosing digits is not supported.
func (s *Service) PIN(_ domain.MasterSecret, _ domain.Domain, digits int) (string, error) {
	if digits < 1 || digits > maxPINDigits {
		return "", fmt.Errorf("%w: PIN length must be in [1,%d], got %d", domain.ErrInvalidArgument, maxPINDigits, digits)
	}
	return "", fmt.Errorf("%w: PIN generation", domain.ErrNotImplemented)
}

// Compile-time assertion that Service implements domain.PassphraseService.
var _ domain.PassphraseService = (*Service)(nil)
