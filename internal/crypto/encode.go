package crypto

import (
	"encoding/hex"
	"strings"
)

// Hex returns lowercase hex without separators.
func Hex(b []byte) string { return hex.EncodeToString(b) }

// ParseHex decodes s, ignoring whitespace and ':' separators.
func ParseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
	return hex.DecodeString(s)
}
