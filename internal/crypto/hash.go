package crypto

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"sort"

	"golang.org/x/crypto/sha3"

	"zrtpkey/internal/domain"
)

const (
	HashS256 = "S256" // SHA-256
	HashN256 = "N256" // SHA3-256
)

var hashes = map[string]func() hash.Hash{
	HashS256: sha256.New,
	HashN256: func() hash.Hash { return sha3.New256() },
}

type digest struct {
	name string
	fn   func() hash.Hash
}

func (d digest) Name() string   { return d.name }
func (d digest) Size() int      { return d.fn().Size() }
func (d digest) New() hash.Hash { return d.fn() }

// ResolveHash returns the hash registered under name. Only 256-bit hashes are
// accepted, since the total hash and s0 are fixed at 32 bytes.
func ResolveHash(name string) (domain.Hash, error) {
	fn, ok := hashes[name]
	if !ok {
		return nil, fmt.Errorf("%w: hash %q", domain.ErrAlgorithmUnavailable, name)
	}
	d := digest{name: name, fn: fn}
	if d.Size() != domain.DigestSize {
		return nil, fmt.Errorf("%w: hash %q is not 256-bit", domain.ErrAlgorithmUnavailable, name)
	}
	return d, nil
}

// HashNames lists the supported hash identifiers.
func HashNames() []string {
	names := make([]string, 0, len(hashes))
	for n := range hashes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
