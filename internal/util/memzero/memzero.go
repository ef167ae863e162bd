// Package memzero wipes secret material from memory.
package memzero

import (
	"crypto/subtle"
	"runtime"
)

// Zero overwrites each buffer with zeros in a constant-time friendly way.
//
// This is best-effort: copies made by the runtime (e.g. when a slice was
// grown) or held in big.Int words are not reached.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		zero := make([]byte, len(b))
		subtle.ConstantTimeCopy(1, b, zero)
		runtime.KeepAlive(b)
	}
}
