package app

import (
	"github.com/rs/zerolog"

	"xkcdget/internal/kdf"
	"xkcdget/internal/profile"
	"xkcdget/internal/services/passphrase"
	"xkcdget/internal/store"
	"xkcdget/internal/wordlist"
)

// App bundles the resolved profile, the revocation store and the passphrase
// service for the CLI.
type App struct {
	Config      Config
	Profile     profile.Profile
	Revocations *store.RevocationFileStore
	Passphrases *passphrase.Service
	Log         zerolog.Logger
}

// New validates cfg and constructs the dependency graph. Every configuration
// error is reported here, before any key derivation.
func New(cfg Config, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p, err := profile.Lookup(cfg.Profile)
	if err != nil {
		return nil, err
	}
	return build(cfg, p, log)
}

// build wires a resolved profile; tests use it to substitute cheap KDF costs.
func build(cfg Config, p profile.Profile, log zerolog.Logger) (*App, error) {
	p, err := cfg.Resolve(p)
	if err != nil {
		return nil, err
	}
	words, err := wordlist.FromLanguages(cfg.WordLists, p.Words)
	if err != nil {
		return nil, err
	}
	engine, layout, err := p.Build(words, kdf.WithLogger(log))
	if err != nil {
		return nil, err
	}

	revocations := store.NewRevocationFileStore(cfg.RevocationPath(p))
	svc, err := passphrase.New(revocations, engine, words, passphrase.Config{
		Layout:      layout,
		Suffix:      p.Suffix,
		ExpectedLen: wordlist.ExpectedLen,
		Logger:      &log,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Config:      cfg,
		Profile:     p,
		Revocations: revocations,
		Passphrases: svc,
		Log:         log,
	}, nil
}
