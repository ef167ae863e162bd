package crypto

import (
	"fmt"

	"zrtpkey/internal/domain"
)

const (
	DefaultHash      = HashS256
	DefaultAgreement = AgreementDH3k
)

// Suite bundles the primitives resolved for a deployment.
type Suite struct {
	Hash      domain.Hash
	Agreement domain.Agreement
}

type options struct {
	subgroupCheck bool
}

// Option tunes how primitives are resolved.
type Option func(*options)

// WithSubgroupCheck makes finite-field agreements reject peer values that
// are not in the prime-order subgroup.
func WithSubgroupCheck() Option {
	return func(o *options) { o.subgroupCheck = true }
}

// Resolve looks up both primitives by their ZRTP identifiers.
func Resolve(hashName, agreementName string, opts ...Option) (Suite, error) {
	h, err := ResolveHash(hashName)
	if err != nil {
		return Suite{}, err
	}
	a, err := ResolveAgreement(agreementName, opts...)
	if err != nil {
		return Suite{}, err
	}
	return Suite{Hash: h, Agreement: a}, nil
}

// ResolveAgreement returns the key agreement registered under name.
func ResolveAgreement(name string, opts ...Option) (domain.Agreement, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	switch name {
	case AgreementDH2k:
		return DH2k(o.subgroupCheck), nil
	case AgreementDH3k:
		return DH3k(o.subgroupCheck), nil
	case AgreementX255:
		return X25519(), nil
	default:
		return nil, fmt.Errorf("%w: key agreement %q", domain.ErrAlgorithmUnavailable, name)
	}
}

// AgreementNames lists the supported key agreement identifiers.
func AgreementNames() []string {
	return []string{AgreementDH2k, AgreementDH3k, AgreementX255}
}
