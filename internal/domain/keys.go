package domain

import "fmt"

// ------------- X25519 -------------

type X25519Private [32]byte
type X25519Public [32]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Public) Slice() []byte  { return k[:] }

func ParseX25519Private(b []byte) (X25519Private, error) {
	var out X25519Private
	if len(b) != 32 {
		return out, fmt.Errorf("X25519 private: want 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}

func ParseX25519Public(b []byte) (X25519Public, error) {
	var out X25519Public
	if len(b) != 32 {
		return out, fmt.Errorf("X25519 public: want 32 bytes, got %d", len(b))
	}
	copy(out[:], b)
	return out, nil
}
