package kdf

import (
	"fmt"

	"xkcdget/internal/domain"
)

const (
	// MinKeyLen is the smallest derived key accepted, regardless of word list size.
	MinKeyLen = 10
	// MaxKeyLen is the largest derived key accepted.
	MaxKeyLen = 64

	maxLogN = 62
)

// Params are the fixed scrypt cost parameters of one format profile.
type Params struct {
	LogN   int // CPU/memory cost, N = 2^LogN
	R      int // block size
	P      int // parallelism
	KeyLen int // derived key length in bytes

	// MinLogN is the cost floor Validate enforces on LogN.
	MinLogN int
}

// N returns the scrypt CPU/memory cost factor.
func (p Params) N() int { return 1 << p.LogN }

// Validate checks the parameters against their bounds.
func (p Params) Validate() error {
	switch {
	case p.MinLogN < 1:
		return fmt.Errorf("%w: cost floor log N must be positive, got %d", domain.ErrConfig, p.MinLogN)
	case p.LogN < p.MinLogN:
		return fmt.Errorf("%w: log N must be at least %d, got %d", domain.ErrConfig, p.MinLogN, p.LogN)
	case p.LogN > maxLogN:
		return fmt.Errorf("%w: log N %d is too large", domain.ErrConfig, p.LogN)
	case p.R < 1 || p.P < 1:
		return fmt.Errorf("%w: r and p must be positive, got r=%d p=%d", domain.ErrConfig, p.R, p.P)
	case uint64(p.R)*uint64(p.P) >= 1<<30:
		return fmt.Errorf("%w: r*p must be below 2^30", domain.ErrConfig)
	case p.KeyLen < MinKeyLen:
		return fmt.Errorf("%w: key length must be %d or more bytes, got %d", domain.ErrConfig, MinKeyLen, p.KeyLen)
	case p.KeyLen > MaxKeyLen:
		return fmt.Errorf("%w: key length must be %d or less bytes, got %d", domain.ErrConfig, MaxKeyLen, p.KeyLen)
	}
	return nil
}

// KeyLen returns the derived key length for a selection layout needing
// needed bytes, raised to floor and never below MinKeyLen.
func KeyLen(needed, floor int) int {
	return max(needed, floor, MinKeyLen)
}
