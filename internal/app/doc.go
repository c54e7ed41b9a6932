// Package app wires application dependencies for the CLI.
//
// It loads Config from YAML, resolves the format profile and word lists, and
// builds the revocation store, KDF engine and passphrase service, exposing
// them via the App struct for commands to use.
package app
