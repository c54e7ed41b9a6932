// Package selector maps windows of a derived key onto word list indices
// without modulo bias.
//
// # Problem
//
// A window of b bits encodes a value in [0, 2^b). When the list length N is
// not a power of two, reducing that value mod N favours the first 2^b mod N
// indices. Rerolling with a function of the rejected bits alone only moves
// that bias around: the same excess preimages always land on the same
// indices.
//
// # Approach
//
// Out-of-range values are rerolled by SHA-256 over the previous digest, the
// rejected word key, the full derived key, the domain, the master secret, the
// reroll counter and the slot position. Because secret and context enter
// every reroll, the excess preimages are remapped differently per user,
// domain and slot, and averaged over those the selection is uniform.
//
// Each digest is cut into window-sized chunks which are tried in order. The
// chain is capped at MaxRerolls digests; hitting the cap returns an error
// wrapping domain.ErrInvariant.
package selector
