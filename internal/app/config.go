package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
	"xkcdget/internal/profile"
	"xkcdget/internal/store"
	"xkcdget/internal/wordlist"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Profile        string   `yaml:"profile"`         // format profile, e.g. v3
	RevocationFile string   `yaml:"revocation_file"` // overrides <home>/<profile file>
	WordLists      []string `yaml:"wordlists"`       // BIP-39 languages; several alternate per slot
	LogLevel       string   `yaml:"log_level"`       // zerolog level name
	Clipboard      bool     `yaml:"clipboard"`       // copy instead of print

	// FingerprintEncoding overrides the profile's revocation encoding (hex, z85).
	FingerprintEncoding string `yaml:"fingerprint_encoding,omitempty"`

	Home string `yaml:"-"` // user home directory, e.g. $HOME
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Profile:   profile.Default,
		WordLists: []string{wordlist.DefaultLanguage},
		LogLevel:  "warn",
	}
}

// DefaultConfigPath returns the config file location under home.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "xkcdget", "config.yaml")
}

// LoadConfig reads the YAML config at path over the defaults. A missing file
// yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := store.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if len(b) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parsing config %s: %v", domain.ErrConfig, path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg to path atomically.
func SaveConfig(path string, cfg Config) error {
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return store.WriteFile(path, b, 0o600)
}

// Validate checks names against the known profiles and word lists.
func (c Config) Validate() error {
	if _, err := profile.Lookup(c.Profile); err != nil {
		return err
	}
	for _, name := range c.WordLists {
		if _, err := wordlist.Lookup(name); err != nil {
			return err
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.FingerprintEncoding != "" {
		if _, err := crypto.ParseFingerprintEncoding(c.FingerprintEncoding); err != nil {
			return err
		}
	}
	if c.RevocationFile == "" && c.Home == "" {
		return fmt.Errorf("%w: no home directory to place the revocation list in", domain.ErrConfig)
	}
	return nil
}

// Resolve applies the config overrides to profile p.
func (c Config) Resolve(p profile.Profile) (profile.Profile, error) {
	if c.FingerprintEncoding == "" {
		return p, nil
	}
	enc, err := crypto.ParseFingerprintEncoding(c.FingerprintEncoding)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Encoding = enc
	return p, nil
}

// RevocationPath resolves the revocation list for profile p.
func (c Config) RevocationPath(p profile.Profile) string {
	if c.RevocationFile != "" {
		return c.RevocationFile
	}
	return filepath.Join(c.Home, p.RevocationFile)
}
