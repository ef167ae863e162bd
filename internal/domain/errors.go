package domain

import "errors"

var (
	// ErrInvalidPeerKey is returned when a peer's public value is not a valid
	// element of the agreed group. The handshake must be aborted.
	ErrInvalidPeerKey = errors.New("invalid peer public value")

	// ErrEncodingUnavailable is returned when a handshake message cannot
	// produce its canonical bytes.
	ErrEncodingUnavailable = errors.New("handshake message encoding unavailable")

	// ErrAlgorithmUnavailable is returned when a required primitive is not
	// known to this build. It is a configuration fault and is never retried.
	ErrAlgorithmUnavailable = errors.New("algorithm unavailable")

	// ErrInvalidKeyPair is returned when the local key pair is malformed.
	ErrInvalidKeyPair = errors.New("invalid local key pair")

	// ErrParameterMismatch is returned when the local key pair was generated
	// for a different agreement than the one in use.
	ErrParameterMismatch = errors.New("key pair does not match agreement")

	// ErrEmptyInput is returned when a required derivation input is empty.
	ErrEmptyInput = errors.New("empty derivation input")
)
