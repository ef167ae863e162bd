package domain

import "fmt"

const (
	ZIDSize    = 12 // ZIDSize is the length of a ZRTP endpoint identifier in bytes.
	DigestSize = 32 // DigestSize is the output size of every supported hash.
)

// ZID is the 96-bit identifier of a ZRTP endpoint.
type ZID [ZIDSize]byte

// Digest is a 256-bit hash value, e.g. the total hash of a handshake.
type Digest [DigestSize]byte

// SharedSecret is the s0 value produced by the key derivation.
type SharedSecret [DigestSize]byte

func (z ZID) Slice() []byte          { return z[:] }
func (d Digest) Slice() []byte       { return d[:] }
func (s SharedSecret) Slice() []byte { return s[:] }

// ParseZID copies b into a ZID.
func ParseZID(b []byte) (ZID, error) {
	var out ZID
	if len(b) != ZIDSize {
		return out, fmt.Errorf("zid: want %d bytes, got %d", ZIDSize, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Message is a handshake message that can produce its canonical encoding.
type Message interface {
	MessageBytes() ([]byte, error)
}

// RawMessage is a handshake message that is already encoded.
type RawMessage []byte

// MessageBytes returns m unchanged.
func (m RawMessage) MessageBytes() ([]byte, error) { return m, nil }

// KeyPair is a local Diffie-Hellman key pair. Both halves are fixed-size
// big-endian (finite field) or little-endian (X25519) encodings as produced by
// the Agreement named in Agreement.
type KeyPair struct {
	Agreement string `json:"agreement"`
	Private   []byte `json:"private"`
	Public    []byte `json:"public"`
}

// Handshake carries everything the derivation pipeline consumes for one
// handshake attempt.
type Handshake struct {
	Hello   Message
	Commit  Message
	DHPart1 Message
	DHPart2 Message

	Local      KeyPair
	PeerPublic []byte

	InitiatorZID ZID
	ResponderZID ZID
}
