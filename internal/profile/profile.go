// Package profile names the passphrase format versions xkcdget can produce.
//
// Each profile pins the scrypt costs, the key length floor, the fingerprint
// encoding, the word count, the suffix and the revocation file name. The
// derivation core is parameterised over these values; nothing below this
// package knows about versions.
package profile

import (
	"fmt"
	"slices"
	"strings"

	"xkcdget/internal/crypto"
	"xkcdget/internal/domain"
	"xkcdget/internal/kdf"
	"xkcdget/internal/selector"
)

// Profile is one passphrase format version.
type Profile struct {
	Name        string
	Description string

	LogN, R, P int
	MinLogN    int
	KeyFloor   int // lower bound on the derived key length

	Encoding crypto.FingerprintEncoding
	Words    int
	Suffix   string

	RevocationFile string // file name inside the user's home directory
}

// Default is the name of the current format.
const Default = "v3"

var profiles = map[string]Profile{
	"v3": {
		Name:           "v3",
		Description:    "scrypt 2^17/8/16, hex SHA-256 revocation, five words",
		LogN:           17,
		R:              8,
		P:              16,
		MinLogN:        17,
		KeyFloor:       kdf.MinKeyLen,
		Encoding:       crypto.HexSHA256,
		Words:          5,
		Suffix:         "_1",
		RevocationFile: ".xkcdget-revocation",
	},
	"v2": {
		Name:           "v2",
		Description:    "legacy shape: scrypt 2^15/8/1, Z85 revocation, four words",
		LogN:           15,
		R:              8,
		P:              1,
		MinLogN:        15,
		KeyFloor:       32,
		Encoding:       crypto.Z85SHA256,
		Words:          4,
		Suffix:         "_1",
		RevocationFile: ".pwget2-revocation",
	},
}

// Names returns all known profile names, sorted.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the profile called name.
func Lookup(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown profile %q (have %s)",
			domain.ErrConfig, name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Layout computes the per-slot key windows for src.
func (p Profile) Layout(src domain.WordSource) (selector.Layout, error) {
	widths := make([]int, src.Slots())
	for slot := range widths {
		w, err := selector.BytesFor(len(src.Words(slot)))
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", slot, err)
		}
		widths[slot] = w
	}
	return selector.NewLayout(widths...), nil
}

// Params returns the validated KDF parameters for a layout.
func (p Profile) Params(layout selector.Layout) (kdf.Params, error) {
	params := kdf.Params{
		LogN:    p.LogN,
		R:       p.R,
		P:       p.P,
		MinLogN: p.MinLogN,
		KeyLen:  kdf.KeyLen(layout.Size(), p.KeyFloor),
	}
	if err := params.Validate(); err != nil {
		return kdf.Params{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	return params, nil
}

// Build returns the validated engine and selection layout for src.
func (p Profile) Build(src domain.WordSource, opts ...kdf.Option) (*kdf.Engine, selector.Layout, error) {
	layout, err := p.Layout(src)
	if err != nil {
		return nil, nil, err
	}
	params, err := p.Params(layout)
	if err != nil {
		return nil, nil, err
	}
	engine, err := kdf.New(params, p.Encoding, opts...)
	if err != nil {
		return nil, nil, err
	}
	return engine, layout, nil
}
