package crypto

import (
	"encoding/hex"
	"strings"

	"zrtpkey/internal/domain"
)

// Fingerprint returns a short fingerprint of a public value for display.
//
// It hashes b with h and renders the first 10 bytes as five groups of four
// hex digits.
func Fingerprint(h domain.Hash, b []byte) string {
	d := h.New()
	d.Write(b)
	s := hex.EncodeToString(d.Sum(nil)[:10])

	groups := make([]string, 0, 5)
	for i := 0; i < len(s); i += 4 {
		groups = append(groups, s[i:i+4])
	}
	return strings.Join(groups, " ")
}
