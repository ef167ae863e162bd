package crypto

import (
	"fmt"
	"io"
	"math/big"
	"strings"

	"zrtpkey/internal/domain"
)

const (
	AgreementDH2k = "DH2k" // RFC 3526 2048-bit MODP group
	AgreementDH3k = "DH3k" // RFC 3526 3072-bit MODP group

	// exponentSize is the length of generated private exponents in bytes.
	exponentSize = 32
)

const dh2kPrime = `
	FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
	29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
	EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
	E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
	EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
	C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
	83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
	670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
	E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
	DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
	15728E5A 8AACAA68 FFFFFFFF FFFFFFFF`

const dh3kPrime = `
	FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
	29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
	EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
	E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
	EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
	C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
	83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
	670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
	E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
	DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
	15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
	ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
	ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
	F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
	BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
	43DB5BFC E0FD108E 4B82D120 A93AD2CA FFFFFFFF FFFFFFFF`

var one = big.NewInt(1)

// Group is a finite-field Diffie–Hellman group with generator 2 over a safe
// prime. Public values and shared secrets are encoded big-endian, left-padded
// to the byte length of the prime.
type Group struct {
	name string
	p    *big.Int
	g    *big.Int
	q    *big.Int // (p-1)/2
	size int

	// subgroupCheck rejects peer values outside the order-q subgroup.
	subgroupCheck bool
}

func newGroup(name, primeHex string, subgroupCheck bool) *Group {
	p, ok := new(big.Int).SetString(strings.Join(strings.Fields(primeHex), ""), 16)
	if !ok {
		panic("crypto: bad prime for " + name)
	}
	q := new(big.Int).Rsh(p, 1)
	return &Group{
		name:          name,
		p:             p,
		g:             big.NewInt(2),
		q:             q,
		size:          (p.BitLen() + 7) / 8,
		subgroupCheck: subgroupCheck,
	}
}

// DH2k returns the 2048-bit MODP group.
func DH2k(subgroupCheck bool) *Group { return newGroup(AgreementDH2k, dh2kPrime, subgroupCheck) }

// DH3k returns the 3072-bit MODP group.
func DH3k(subgroupCheck bool) *Group { return newGroup(AgreementDH3k, dh3kPrime, subgroupCheck) }

func (g *Group) Name() string { return g.name }
func (g *Group) Size() int    { return g.size }

// Prime returns a copy of the group modulus.
func (g *Group) Prime() *big.Int { return new(big.Int).Set(g.p) }

// GenerateKeyPair draws a 256-bit private exponent from rand.
func (g *Group) GenerateKeyPair(rand io.Reader) (domain.KeyPair, error) {
	priv := make([]byte, exponentSize)
	x := new(big.Int)
	for x.Cmp(one) <= 0 {
		if _, err := io.ReadFull(rand, priv); err != nil {
			return domain.KeyPair{}, err
		}
		x.SetBytes(priv)
	}
	pub := new(big.Int).Exp(g.g, x, g.p)
	x.SetInt64(0)
	return domain.KeyPair{
		Agreement: g.name,
		Private:   priv,
		Public:    pub.FillBytes(make([]byte, g.size)),
	}, nil
}

// SharedSecret computes peerPublic^private mod p.
func (g *Group) SharedSecret(private, peerPublic []byte) ([]byte, error) {
	y, err := g.parsePublic(peerPublic)
	if err != nil {
		return nil, err
	}
	x := new(big.Int).SetBytes(private)
	if x.Cmp(one) <= 0 || len(private) > g.size {
		return nil, fmt.Errorf("%w: %s private exponent out of range", domain.ErrInvalidKeyPair, g.name)
	}
	s := new(big.Int).Exp(y, x, g.p)
	out := s.FillBytes(make([]byte, g.size))
	x.SetInt64(0)
	s.SetInt64(0)
	return out, nil
}

func (g *Group) parsePublic(b []byte) (*big.Int, error) {
	if len(b) == 0 || len(b) > g.size {
		return nil, fmt.Errorf("%w: %s value has %d bytes", domain.ErrInvalidPeerKey, g.name, len(b))
	}
	y := new(big.Int).SetBytes(b)

	// 1 < y < p-1
	pm1 := new(big.Int).Sub(g.p, one)
	if y.Cmp(one) <= 0 || y.Cmp(pm1) >= 0 {
		return nil, fmt.Errorf("%w: %s value out of range", domain.ErrInvalidPeerKey, g.name)
	}
	if g.subgroupCheck && new(big.Int).Exp(y, g.q, g.p).Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: %s value not in prime-order subgroup", domain.ErrInvalidPeerKey, g.name)
	}
	return y, nil
}

var _ domain.Agreement = (*Group)(nil)
