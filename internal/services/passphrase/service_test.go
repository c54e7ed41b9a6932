package passphrase_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
	"xkcdget/internal/kdf"
	"xkcdget/internal/selector"
	"xkcdget/internal/services/passphrase"
	"xkcdget/internal/store"
	"xkcdget/internal/wordlist"
)

var (
	secret = domain.MasterSecret("correct horse")
	site   = domain.Domain("example.com")
	shape  = regexp.MustCompile(`^([A-Z][a-z]+){5}_1$`)
)

type fixture struct {
	svc    *passphrase.Service
	store  *store.RevocationFileStore
	engine *kdf.Engine
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	engine, err := kdf.New(kdf.Params{LogN: 4, R: 1, P: 1, KeyLen: 10, MinLogN: 1}, crypto.HexSHA256)
	require.NoError(t, err)

	english, err := wordlist.Lookup("english")
	require.NoError(t, err)

	rs := store.NewRevocationFileStore(filepath.Join(t.TempDir(), ".xkcdget-revocation"))
	svc, err := passphrase.New(rs, engine, wordlist.NewCombined(english, 5), passphrase.Config{
		Layout:      selector.NewLayout(2, 2, 2, 2, 2),
		Suffix:      "_1",
		ExpectedLen: wordlist.ExpectedLen,
	})
	require.NoError(t, err)
	return fixture{svc: svc, store: rs, engine: engine}
}

func TestGenerate_RoundTrip(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.Generate(secret, site)
	require.NoError(t, err)
	assert.Regexp(t, shape, first.String())
	assert.True(t, strings.HasSuffix(first.String(), "_1"))

	again, err := f.svc.Generate(secret, site)
	require.NoError(t, err)
	assert.Equal(t, first, again)

	fp, err := f.svc.Revoke(secret, site)
	require.NoError(t, err)

	b, err := os.ReadFile(f.store.Path())
	require.NoError(t, err)
	assert.Equal(t, fp.String()+"\n", string(b))

	after, err := f.svc.Generate(secret, site)
	require.NoError(t, err)
	assert.Regexp(t, shape, after.String())
	assert.NotEqual(t, first, after)

	// Still deterministic once revoked.
	afterAgain, err := f.svc.Generate(secret, site)
	require.NoError(t, err)
	assert.Equal(t, after, afterAgain)
}

func TestRevoke_AdvancesAttempt(t *testing.T) {
	f := newFixture(t)

	fp0, err := f.svc.Revoke(secret, site)
	require.NoError(t, err)
	fp1, err := f.svc.Revoke(secret, site)
	require.NoError(t, err)
	assert.NotEqual(t, fp0, fp1)

	set, err := f.store.Load()
	require.NoError(t, err)
	k, err := f.engine.Derive(secret, site, set)
	require.NoError(t, err)
	assert.Equal(t, domain.AttemptIndex(2), k.Attempt)

	k1, err := f.engine.Key(secret, site, 1)
	require.NoError(t, err)
	assert.Equal(t, crypto.Fingerprint(k1), fp1)
}

func TestGenerate_DependsOnEveryInput(t *testing.T) {
	f := newFixture(t)

	base, err := f.svc.Generate(secret, site)
	require.NoError(t, err)

	otherDomain, err := f.svc.Generate(secret, "example.org")
	require.NoError(t, err)
	assert.NotEqual(t, base, otherDomain)

	otherSecret, err := f.svc.Generate(domain.MasterSecret("battery staple"), site)
	require.NoError(t, err)
	assert.NotEqual(t, base, otherSecret)

	empty, err := f.svc.Generate(secret, "")
	require.NoError(t, err)
	assert.Regexp(t, shape, empty.String())
}

func TestGenerate_RevocationReadErrorIsFatal(t *testing.T) {
	engine, err := kdf.New(kdf.Params{LogN: 4, R: 1, P: 1, KeyLen: 10, MinLogN: 1}, crypto.HexSHA256)
	require.NoError(t, err)
	english, err := wordlist.Lookup("english")
	require.NoError(t, err)

	// A directory cannot be read as a revocation list.
	rs := store.NewRevocationFileStore(t.TempDir())
	svc, err := passphrase.New(rs, engine, wordlist.NewCombined(english, 5), passphrase.Config{
		Layout:      selector.NewLayout(2, 2, 2, 2, 2),
		Suffix:      "_1",
		ExpectedLen: wordlist.ExpectedLen,
	})
	require.NoError(t, err)

	_, err = svc.Generate(secret, site)
	assert.Error(t, err)
	_, err = svc.Revoke(secret, site)
	assert.Error(t, err)
}

func TestNew_RejectsMismatchedConfiguration(t *testing.T) {
	f := newFixture(t)
	english, err := wordlist.Lookup("english")
	require.NoError(t, err)
	words := wordlist.NewCombined(english, 5)

	_, err = passphrase.New(f.store, f.engine, words, passphrase.Config{
		Layout:      selector.NewLayout(2, 2, 2, 2, 2),
		ExpectedLen: 2047,
	})
	assert.ErrorIs(t, err, domain.ErrConfig)

	_, err = passphrase.New(f.store, f.engine, words, passphrase.Config{
		Layout:      selector.NewLayout(2, 2, 2, 2),
		ExpectedLen: wordlist.ExpectedLen,
	})
	assert.ErrorIs(t, err, domain.ErrConfig)

	_, err = passphrase.New(f.store, f.engine, words, passphrase.Config{
		Layout:      selector.NewLayout(2, 2, 2, 2, 1),
		ExpectedLen: wordlist.ExpectedLen,
	})
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestNew_RejectsLayoutLongerThanKey(t *testing.T) {
	f := newFixture(t)
	english, err := wordlist.Lookup("english")
	require.NoError(t, err)

	// Six words need 12 bytes but the engine only derives 10.
	svc, err := passphrase.New(f.store, f.engine, wordlist.NewCombined(english, 6), passphrase.Config{
		Layout:      selector.NewLayout(2, 2, 2, 2, 2, 2),
		Suffix:      "_1",
		ExpectedLen: wordlist.ExpectedLen,
	})
	assert.ErrorIs(t, err, domain.ErrConfig)
	assert.Nil(t, svc)
}

func TestEntropy(t *testing.T) {
	perSlot, total := newFixture(t).svc.Entropy()
	assert.Equal(t, []float64{11, 11, 11, 11, 11}, perSlot)
	assert.InDelta(t, 55.0, total, 1e-9)
}

func TestPIN(t *testing.T) {
	svc := newFixture(t).svc

	_, err := svc.PIN(secret, site, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.PIN(secret, site, passphrase.DefaultPINDigits)
	assert.ErrorIs(t, err, domain.ErrNotImplemented)
}
