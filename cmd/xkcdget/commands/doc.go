// Package commands defines the xkcdget CLI and wires dependencies for subcommands.
//
// Commands
//
//   - xkcdget [domain]          Derive and print the passphrase for a domain
//   - revoke [domain]           Retire the current passphrase for a domain
//   - pin [domain] [digits]     Validate a PIN request (PINs are not implemented)
//   - entropy                   Print the entropy of the active profile
//   - profiles                  List the known passphrase formats
//   - config init               Write a default config file
//
// A domain that is not given as an argument is read from stdin, followed by
// the master password (hidden on a terminal).
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the app (profile, word lists, revocation store, KDF engine) before any
// subcommand runs, so configuration errors surface before the slow key
// derivation starts. Only the passphrase itself is written to stdout, without
// a trailing newline, so it can be piped into a clipboard tool; everything
// else goes to stderr.
package commands
