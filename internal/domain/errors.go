package domain

import "errors"

// Error classes. Concrete errors wrap exactly one of these so callers can
// branch with errors.Is without knowing the package that produced them.
var (
	// ErrConfig marks invalid parameters detected before any derivation work.
	ErrConfig = errors.New("configuration error")
	// ErrInvariant marks a broken internal assumption; the operation is aborted.
	ErrInvariant = errors.New("internal invariant violated")
	// ErrInvalidArgument marks rejected user input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotImplemented marks a recognised but unavailable operation.
	ErrNotImplemented = errors.New("not implemented")
)
