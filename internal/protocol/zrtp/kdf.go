package zrtp

import (
	"encoding/binary"
	"fmt"
	"io"

	"zrtpkey/internal/domain"
)

// KDFLabel separates s0 derivation from every other use of the hash.
const KDFLabel = "ZRTP-HMAC-KDF"

// kdfCounter is fixed at 1: s0 is always a single hash block.
const kdfCounter uint32 = 1

// Mode selects which auxiliary secrets are mixed into s0 after the total
// hash. SingleSecret is the only mode implemented.
type Mode interface {
	writeAuxSecrets(w io.Writer)
}

// SingleSecret mixes in no auxiliary secrets: the s1, s2 and s3 length
// fields are all zero and no secret bytes follow them.
type SingleSecret struct{}

func (SingleSecret) writeAuxSecrets(w io.Writer) {
	for i := 0; i < 3; i++ {
		_ = binary.Write(w, binary.BigEndian, uint32(0))
	}
}

// KDF derives s0 from the raw DH result, the total hash and both ZIDs.
func KDF(h domain.Hash, mode Mode, dhResult []byte, totalHash domain.Digest, zidi, zidr domain.ZID) (domain.SharedSecret, error) {
	var s0 domain.SharedSecret
	if err := checkHash(h); err != nil {
		return s0, err
	}
	if mode == nil {
		return s0, fmt.Errorf("%w: no derivation mode", domain.ErrEmptyInput)
	}
	if len(dhResult) == 0 {
		return s0, fmt.Errorf("%w: DH result", domain.ErrEmptyInput)
	}

	d := h.New()
	_ = binary.Write(d, binary.BigEndian, kdfCounter)
	d.Write(dhResult)
	_, _ = io.WriteString(d, KDFLabel)
	d.Write(zidi[:])
	d.Write(zidr[:])
	d.Write(totalHash[:])
	mode.writeAuxSecrets(d)

	copy(s0[:], d.Sum(nil))
	return s0, nil
}

// SharedSecret derives s0 in single-secret mode.
func SharedSecret(h domain.Hash, dhResult []byte, totalHash domain.Digest, zidi, zidr domain.ZID) (domain.SharedSecret, error) {
	return KDF(h, SingleSecret{}, dhResult, totalHash, zidi, zidr)
}
