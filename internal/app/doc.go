// Package app wires application dependencies for the CLI.
//
// It resolves the crypto suite from Config, builds the logger, the secret
// Deriver and the key-pair store, and exposes them via the Wire struct for
// commands to use.
package app
