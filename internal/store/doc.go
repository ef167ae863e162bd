// Package store provides file-based persistence for local key pairs.
//
// Key pairs are serialised as JSON, sealed with ChaCha20-Poly1305 under a
// key derived from the user's passphrase with scrypt, and written atomically
// to <dir>/<name>.key.enc with mode 0600. All methods are concurrency-safe
// via internal locking.
package store
