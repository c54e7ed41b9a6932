// Package prompt reads the domain and master password from the user.
//
// On a terminal the domain prompt is shown and the password is read without
// echo. When stdin is a pipe both values are read as plain lines, so
// `printf 'example.com\nsecret\n' | xkcdget` works.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Terminal is the input side of a prompt session.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// New wraps in and out. fd is the descriptor behind in, used to detect a
// terminal and to disable echo; pass -1 for readers that are not files.
func New(in io.Reader, out io.Writer, fd int) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
		tty: fd >= 0 && term.IsTerminal(fd),
	}
}

// IsTerminal reports whether input comes from an interactive terminal.
func (t *Terminal) IsTerminal() bool { return t.tty }

// readLine reads one line and trims surrounding whitespace. A final line
// without a newline is accepted.
func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Domain asks for the domain. An empty answer is returned as is.
func (t *Terminal) Domain() (string, error) {
	if t.tty {
		fmt.Fprint(t.out, "Domain: ")
	}
	d, err := t.readLine()
	if err != nil {
		return "", fmt.Errorf("reading domain: %w", err)
	}
	return d, nil
}

// MasterPassword asks for the master password, hidden when on a terminal.
func (t *Terminal) MasterPassword() ([]byte, error) {
	if t.tty {
		fmt.Fprint(t.out, "Master password: ")
		pw, err := term.ReadPassword(t.fd)
		fmt.Fprintln(t.out)
		if err != nil {
			return nil, fmt.Errorf("reading master password from terminal: %w", err)
		}
		return pw, nil
	}
	pw, err := t.readLine()
	if err != nil {
		return nil, fmt.Errorf("no master password on stdin: %w", err)
	}
	return []byte(pw), nil
}
