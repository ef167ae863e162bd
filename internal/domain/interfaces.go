package domain

import (
	"hash"
	"io"
)

// Hash is a resolved digest primitive.
type Hash interface {
	// Name returns the ZRTP hash type, e.g. "S256".
	Name() string
	Size() int
	New() hash.Hash
}

// Agreement is a resolved Diffie-Hellman primitive bound to its domain
// parameters.
type Agreement interface {
	// Name returns the ZRTP key agreement type, e.g. "DH3k".
	Name() string
	// Size is the encoded size of public values and shared secrets.
	Size() int
	GenerateKeyPair(rand io.Reader) (KeyPair, error)
	// SharedSecret combines a private key with a peer's public value.
	SharedSecret(private, peerPublic []byte) ([]byte, error)
}

// KeyPairStore persists local key pairs.
type KeyPairStore interface {
	SaveKeyPair(passphrase, name string, kp KeyPair) error
	LoadKeyPair(passphrase, name string) (KeyPair, error)
}
