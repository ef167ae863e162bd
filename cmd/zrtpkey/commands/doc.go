// Package commands defines the zrtpkey CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen      Generate and store a key pair for the configured agreement
//   - pubkey      Print a stored public value
//   - total-hash  Hash the Hello, Commit, DHPart1 and DHPart2 encodings
//   - dh          Check a DH combination against a peer public value
//   - derive      Run the full pipeline and print the total hash and s0
//
// # Implementation
//
// The root command resolves the crypto suite and builds the dependency graph
// (logger, deriver, key store) before any subcommand runs, so an unknown
// algorithm fails before any key material is touched.
package commands
