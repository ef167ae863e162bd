package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"

	"zrtpkey/internal/domain"
)

// AgreementX255 is the ZRTP identifier for X25519.
const AgreementX255 = "X255"

// GenerateX25519 returns a fresh Curve25519 key pair.
// The private key is clamped per RFC 7748.
func GenerateX25519(rand io.Reader) (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if _, err = io.ReadFull(rand, priv[:]); err != nil {
		return
	}
	clamp(&priv)
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return
	}
	copy(pub[:], pb)
	return
}

// DH computes X25519 Diffie–Hellman. It fails if pub is a low-order point.
func DH(priv domain.X25519Private, pub domain.X25519Public) (out [32]byte, err error) {
	secret, err := curve25519.X25519(priv.Slice(), pub.Slice())
	if err != nil {
		return out, err
	}
	copy(out[:], secret)
	return out, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}

type x25519Agreement struct{}

// X25519 returns the X255 agreement.
func X25519() domain.Agreement { return x25519Agreement{} }

func (x25519Agreement) Name() string { return AgreementX255 }
func (x25519Agreement) Size() int    { return curve25519.PointSize }

func (x25519Agreement) GenerateKeyPair(rand io.Reader) (domain.KeyPair, error) {
	priv, pub, err := GenerateX25519(rand)
	if err != nil {
		return domain.KeyPair{}, err
	}
	return domain.KeyPair{
		Agreement: AgreementX255,
		Private:   priv[:],
		Public:    pub[:],
	}, nil
}

func (x25519Agreement) SharedSecret(private, peerPublic []byte) ([]byte, error) {
	priv, err := domain.ParseX25519Private(private)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyPair, err)
	}
	pub, err := domain.ParseX25519Public(peerPublic)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPeerKey, err)
	}
	out, err := DH(priv, pub)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidPeerKey, err)
	}
	return out[:], nil
}
