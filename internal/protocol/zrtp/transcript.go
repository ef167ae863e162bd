package zrtp

import (
	"fmt"

	"zrtpkey/internal/domain"
)

// TotalHash hashes the canonical encodings of the Hello, Commit, DHPart1 and
// DHPart2 messages, concatenated in that order with no framing.
func TotalHash(h domain.Hash, hello, commit, dhPart1, dhPart2 domain.Message) (domain.Digest, error) {
	var out domain.Digest
	if err := checkHash(h); err != nil {
		return out, err
	}

	transcript := [...]struct {
		name string
		msg  domain.Message
	}{
		{"Hello", hello},
		{"Commit", commit},
		{"DHPart1", dhPart1},
		{"DHPart2", dhPart2},
	}

	d := h.New()
	for _, m := range transcript {
		b, err := encode(m.name, m.msg)
		if err != nil {
			return out, err
		}
		d.Write(b)
	}
	copy(out[:], d.Sum(nil))
	return out, nil
}

func encode(name string, m domain.Message) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: %s missing", domain.ErrEncodingUnavailable, name)
	}
	b, err := m.MessageBytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrEncodingUnavailable, name, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: %s is empty", domain.ErrEncodingUnavailable, name)
	}
	return b, nil
}

func checkHash(h domain.Hash) error {
	if h == nil {
		return fmt.Errorf("%w: no hash configured", domain.ErrAlgorithmUnavailable)
	}
	if h.Size() != domain.DigestSize {
		return fmt.Errorf("%w: hash %s is not 256-bit", domain.ErrAlgorithmUnavailable, h.Name())
	}
	return nil
}
