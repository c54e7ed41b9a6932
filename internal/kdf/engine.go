package kdf

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/scrypt"

	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
)

// Candidate is the key computed for one attempt index.
type Candidate struct {
	Attempt     domain.AttemptIndex
	Key         []byte
	Fingerprint domain.Fingerprint
}

// Engine derives keys with fixed scrypt parameters.
type Engine struct {
	params Params
	fp     domain.Fingerprinter
	log    zerolog.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger sets the logger used to report skipped candidates.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New validates params and returns an engine. No hashing happens here.
func New(params Params, fp domain.Fingerprinter, opts ...Option) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if fp == nil {
		return nil, fmt.Errorf("%w: no fingerprint encoding", domain.ErrConfig)
	}
	e := &Engine{params: params, fp: fp, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Params returns the engine's cost parameters.
func (e *Engine) Params() Params { return e.params }

// KeyLen returns the derived key length in bytes.
func (e *Engine) KeyLen() int { return e.params.KeyLen }

// Salt returns the KDF salt for one attempt: domain ":" attempt.
func Salt(d domain.Domain, attempt domain.AttemptIndex) []byte {
	salt := make([]byte, 0, len(d)+21)
	salt = append(salt, d...)
	salt = append(salt, ':')
	return strconv.AppendUint(salt, uint64(attempt), 10)
}

// Key computes the candidate key for a single attempt index.
func (e *Engine) Key(secret domain.MasterSecret, d domain.Domain, attempt domain.AttemptIndex) ([]byte, error) {
	key, err := scrypt.Key(secret, Salt(d, attempt), e.params.N(), e.params.R, e.params.P, e.params.KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt attempt %d: %w", attempt, err)
	}
	return key, nil
}

// Candidates lazily yields one candidate per attempt index, starting at 0 and
// strictly increasing. The sequence ends only when the consumer stops pulling
// or a KDF error is yielded.
func (e *Engine) Candidates(secret domain.MasterSecret, d domain.Domain) iter.Seq2[Candidate, error] {
	return func(yield func(Candidate, error) bool) {
		for attempt := domain.AttemptIndex(0); ; attempt++ {
			key, err := e.Key(secret, d, attempt)
			if err != nil {
				yield(Candidate{Attempt: attempt}, err)
				return
			}
			c := Candidate{Attempt: attempt, Key: key, Fingerprint: e.fp.Fingerprint(key)}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Derive returns the first candidate whose fingerprint is not in revoked.
// It never mutates the revocation store.
func (e *Engine) Derive(secret domain.MasterSecret, d domain.Domain, revoked domain.RevocationSet) (domain.DerivedKey, error) {
	for c, err := range e.Candidates(secret, d) {
		if err != nil {
			return domain.DerivedKey{}, err
		}
		if revoked.Contains(c.Fingerprint) {
			e.log.Info().
				Uint64("attempt", uint64(c.Attempt)).
				Str("fingerprint", c.Fingerprint.String()).
				Msg("was revoked")
			crypto.Wipe(c.Key)
			continue
		}
		e.log.Debug().Uint64("attempt", uint64(c.Attempt)).Int("key_len", len(c.Key)).Msg("derived key")
		return domain.DerivedKey{Bytes: c.Key, Attempt: c.Attempt, Fingerprint: c.Fingerprint}, nil
	}
	return domain.DerivedKey{}, fmt.Errorf("%w: candidate sequence ended without a key", domain.ErrInvariant)
}

// Compile-time assertion that Engine implements domain.KeyDeriver.
var _ domain.KeyDeriver = (*Engine)(nil)
