package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"xkcdget/internal/domain"
)

// ParseLevel maps a config level name onto a zerolog level; empty means warn.
func ParseLevel(name string) (zerolog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log level %q: %v", domain.ErrConfig, name, err)
	}
	return lvl, nil
}

// NewLogger returns a human-readable logger writing to w.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(cw).Level(level)
}
