package zrtp

import (
	"fmt"

	"zrtpkey/internal/domain"
)

// DHSecret combines the local key pair with the peer's public value under a.
// The key pair must have been generated for the same agreement. The result
// is a.Size() bytes and must be wiped by the caller once consumed.
func DHSecret(kp domain.KeyPair, peerPublic []byte, a domain.Agreement) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: no key agreement configured", domain.ErrAlgorithmUnavailable)
	}
	if kp.Agreement != a.Name() {
		return nil, fmt.Errorf("%w: key pair is %q, agreement is %q", domain.ErrParameterMismatch, kp.Agreement, a.Name())
	}
	if len(kp.Private) == 0 {
		return nil, fmt.Errorf("%w: missing private key", domain.ErrInvalidKeyPair)
	}
	return a.SharedSecret(kp.Private, peerPublic)
}
