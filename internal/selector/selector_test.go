package selector_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xkcdget/internal/domain"
	"xkcdget/internal/selector"
)

func baseContext() selector.Context {
	key := make([]byte, 10)
	for i := range key {
		key[i] = byte(i)
	}
	return selector.Context{
		Key:    key,
		Domain: "example.com",
		Secret: domain.MasterSecret("correct horse"),
	}
}

func TestBytesFor(t *testing.T) {
	tests := []struct{ n, want int }{
		{1, 1}, {2, 1}, {255, 1}, {256, 1}, {257, 2},
		{2047, 2}, {2048, 2}, {65536, 2}, {65537, 3},
		{1 << 32, 4}, {1<<32 + 1, 5},
	}
	for _, tt := range tests {
		got, err := selector.BytesFor(tt.n)
		require.NoError(t, err, "n=%d", tt.n)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}

	_, err := selector.BytesFor(0)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestSelect_AcceptsInRangeWindow(t *testing.T) {
	idx, stats, err := selector.Select([]byte{0x00, 0x05}, 2048, baseContext())
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
	assert.Equal(t, selector.Stats{Tries: 1}, stats)

	idx, _, err = selector.Select([]byte{0x07, 0xff}, 2048, baseContext())
	require.NoError(t, err)
	assert.Equal(t, 2047, idx)
}

func TestSelect_RerollChain(t *testing.T) {
	ctx := baseContext()

	idx, stats, err := selector.Select([]byte{0xff, 0xff}, 2048, ctx)
	require.NoError(t, err)
	assert.Equal(t, 1062, idx)
	assert.Equal(t, 3, stats.Rerolls)

	ctx.Slot = 1
	idx, stats, err = selector.Select([]byte{0xff, 0xff}, 2048, ctx)
	require.NoError(t, err)
	assert.Equal(t, 1209, idx)
	assert.Equal(t, 1, stats.Rerolls)

	ctx.Slot = 3
	idx, _, err = selector.Select([]byte{0x07, 0xff}, 2047, ctx)
	require.NoError(t, err)
	assert.Equal(t, 367, idx)
}

func TestSelect_Deterministic(t *testing.T) {
	for i := range 20 {
		ctx := baseContext()
		ctx.Domain = domain.Domain(fmt.Sprintf("site-%d", i))
		a, _, err := selector.Select([]byte{0xfa, 0xce}, 2048, ctx)
		require.NoError(t, err)
		b, _, err := selector.Select([]byte{0xfa, 0xce}, 2048, ctx)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	}
}

func TestSelect_RejectsBadWindow(t *testing.T) {
	_, _, err := selector.Select(nil, 2048, baseContext())
	assert.ErrorIs(t, err, domain.ErrInvariant)

	_, _, err = selector.Select(make([]byte, 9), 2048, baseContext())
	assert.ErrorIs(t, err, domain.ErrInvariant)

	_, _, err = selector.Select([]byte{1}, 0, baseContext())
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestSelect_CapIsAnError(t *testing.T) {
	// An 8-byte window against a bound of 1 essentially never fits.
	window := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	_, stats, err := selector.Select(window, 1, baseContext())
	require.ErrorIs(t, err, domain.ErrInvariant)
	assert.Equal(t, selector.MaxRerolls, stats.Rerolls)
}

func TestChunks_CutsDigestIntoWindows(t *testing.T) {
	var n int
	for c, err := range selector.Chunks([]byte{0xff, 0xff}, baseContext()) {
		require.NoError(t, err)
		if c.Reroll > 1 {
			break
		}
		assert.Less(t, c.Index, uint64(1<<16))
		n++
	}
	assert.Equal(t, 16, n)
}

func TestSelect_TerminatesWithinCap(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	bounds := []int{1, 2, 3, 100, 257, 2047, 2048, 40000, 65535, 65536}
	for _, n := range bounds {
		width, err := selector.BytesFor(n)
		require.NoError(t, err)
		for trial := range 200 {
			window := make([]byte, width)
			for i := range window {
				window[i] = byte(rng.IntN(256))
			}
			ctx := baseContext()
			ctx.Domain = domain.Domain(fmt.Sprintf("trial-%d", trial))
			ctx.Slot = uint8(trial)

			idx, stats, err := selector.Select(window, n, ctx)
			require.NoError(t, err, "n=%d trial=%d", n, trial)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, n)
			assert.Less(t, stats.Rerolls, selector.MaxRerolls)
		}
	}
}

// With a one-byte window and N=160, the 96 values 160..255 are out of range.
// Modulo reduction would give indices 0..95 twice the weight of 96..159; the
// reroll chain must spread them evenly once the context varies.
func TestSelect_UniformAcrossContexts(t *testing.T) {
	const (
		n        = 160
		contexts = 400
	)
	counts := make([]int, n)
	for c := range contexts {
		ctx := baseContext()
		ctx.Domain = domain.Domain(fmt.Sprintf("domain-%d", c))
		ctx.Slot = uint8(c % 5)
		for w := range 256 {
			idx, _, err := selector.Select([]byte{byte(w)}, n, ctx)
			require.NoError(t, err)
			counts[idx]++
		}
	}

	expected := float64(contexts*256) / n
	for idx, got := range counts {
		assert.InDelta(t, expected, float64(got), expected*0.3, "index %d", idx)
	}

	var low, high float64
	for idx, got := range counts {
		if idx < 256-n {
			low += float64(got)
		} else {
			high += float64(got)
		}
	}
	low /= float64(256 - n)
	high /= float64(n - (256 - n))
	assert.InDelta(t, 1.0, low/high, 0.05, "modulo-style bias between folded and unfolded indices")
}

func TestSelect_ChiSquareN2047(t *testing.T) {
	const (
		n       = 2047
		samples = 100_000
	)
	rng := rand.New(rand.NewPCG(7, 11))
	counts := make([]int, n)
	for i := range samples {
		ctx := baseContext()
		ctx.Domain = domain.Domain(fmt.Sprintf("d%d", i))
		window := []byte{byte(rng.IntN(256)), byte(rng.IntN(256))}
		idx, _, err := selector.Select(window, n, ctx)
		require.NoError(t, err)
		counts[idx]++
	}

	expected := float64(samples) / n
	var chi2 float64
	for _, got := range counts {
		d := float64(got) - expected
		chi2 += d * d / expected
	}
	// df = 2046, sd = sqrt(2*df) ~ 64; allow six standard deviations.
	assert.InDelta(t, float64(n-1), chi2, 6*64, "chi-square statistic")
}

// Which indices absorb the out-of-range windows must depend on the context.
func TestSelect_RedistributesPerContext(t *testing.T) {
	const n = 160
	absorbed := func(ctx selector.Context) []int {
		var out []int
		for w := n; w < 256; w++ {
			idx, _, err := selector.Select([]byte{byte(w)}, n, ctx)
			require.NoError(t, err)
			out = append(out, idx)
		}
		return out
	}

	base := absorbed(baseContext())

	otherDomain := baseContext()
	otherDomain.Domain = "example.org"
	assert.NotEqual(t, base, absorbed(otherDomain))

	otherSlot := baseContext()
	otherSlot.Slot = 4
	assert.NotEqual(t, base, absorbed(otherSlot))

	otherSecret := baseContext()
	otherSecret.Secret = domain.MasterSecret("battery staple")
	assert.NotEqual(t, base, absorbed(otherSecret))
}
