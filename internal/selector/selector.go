package selector

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"iter"
	"math/bits"
	"strconv"

	"xkcdget/internal/domain"
)

const (
	// MaxRerolls bounds the rehash chain for one slot.
	MaxRerolls = 1000
	// MaxWindow is the widest window that fits the native uint64.
	MaxWindow = 8

	digestSize = sha256.Size
)

// Context is every value that salts the reroll chain of one slot.
type Context struct {
	Key     []byte // full derived key
	Domain  domain.Domain
	Secret  domain.MasterSecret
	Slot    uint8
	Attempt domain.AttemptIndex // attempt index the key was derived at
}

// Stats reports how much work one selection took.
type Stats struct {
	Rerolls int // digests computed
	Tries   int // chunks decoded from those digests
}

// BytesFor returns the window width in bytes needed to address [0, n).
func BytesFor(n int) (int, error) {
	if n < 1 {
		return 0, fmt.Errorf("%w: word list must not be empty", domain.ErrConfig)
	}
	width := max((bits.Len64(uint64(n-1))+7)/8, 1)
	if width > MaxWindow {
		return 0, fmt.Errorf("%w: %d bytes per word exceed the native %d", domain.ErrConfig, width, MaxWindow)
	}
	return width, nil
}

// wordKey widens a window into the zero-padded big-endian uint64 form used
// both for range checks and as reroll input.
func wordKey(window []byte) ([MaxWindow]byte, error) {
	var wk [MaxWindow]byte
	if len(window) == 0 || len(window) > MaxWindow {
		return wk, fmt.Errorf("%w: window of %d bytes", domain.ErrInvariant, len(window))
	}
	copy(wk[MaxWindow-len(window):], window)
	return wk, nil
}

// Chunk is one candidate produced by the reroll chain.
type Chunk struct {
	Reroll int
	Index  uint64
}

// Chunks lazily yields the reroll chain for a rejected window: for every
// reroll 1..MaxRerolls, each window-sized chunk of that reroll's digest. The
// word key fed into a reroll is the last chunk tried before it.
func Chunks(window []byte, ctx Context) iter.Seq2[Chunk, error] {
	return func(yield func(Chunk, error) bool) {
		wk, err := wordKey(window)
		if err != nil {
			yield(Chunk{}, err)
			return
		}
		width := len(window)
		perDigest := digestSize / width

		var prev []byte
		for reroll := 1; reroll <= MaxRerolls; reroll++ {
			h := sha256.New()
			h.Write(prev)
			h.Write(wk[:])
			h.Write(ctx.Key)
			h.Write(ctx.Domain.Bytes())
			h.Write(ctx.Secret)
			h.Write(strconv.AppendInt(nil, int64(reroll), 10))
			h.Write([]byte{ctx.Slot})
			prev = h.Sum(prev[:0])

			for i := range perDigest {
				wk = [MaxWindow]byte{}
				copy(wk[MaxWindow-width:], prev[i*width:(i+1)*width])
				if !yield(Chunk{Reroll: reroll, Index: binary.BigEndian.Uint64(wk[:])}, nil) {
					return
				}
			}
		}
		yield(Chunk{Reroll: MaxRerolls}, fmt.Errorf(
			"%w: no index below bound after %d rerolls (slot %d)", domain.ErrInvariant, MaxRerolls, ctx.Slot))
	}
}

// Select returns an index in [0, n) for window, rerolling out-of-range values
// through the context-dependent hash chain.
func Select(window []byte, n int, ctx Context) (int, Stats, error) {
	if n < 1 {
		return 0, Stats{}, fmt.Errorf("%w: word list must not be empty", domain.ErrConfig)
	}
	wk, err := wordKey(window)
	if err != nil {
		return 0, Stats{}, err
	}
	bound := uint64(n)
	stats := Stats{Tries: 1}
	if idx := binary.BigEndian.Uint64(wk[:]); idx < bound {
		return int(idx), stats, nil
	}

	for c, err := range Chunks(window, ctx) {
		if err != nil {
			return 0, stats, err
		}
		stats.Rerolls = c.Reroll
		stats.Tries++
		if c.Index < bound {
			return int(c.Index), stats, nil
		}
	}
	return 0, stats, fmt.Errorf("%w: reroll chain ended early", domain.ErrInvariant)
}
