package compress

import (
	"github.com/divetools/swiftgps/format"
)

// UnmaskXOR reverses the rolling XOR mask the device applies to the
// expanded record stream.
//
// Each byte from offset format.XORWindow onward is XORed, in ascending
// order, with the byte 32 positions before it in the working copy. Because
// earlier bytes are already restored by the time later bytes are reached,
// a single forward pass inverts the cumulative mask. The first 32 bytes
// are copied through unchanged, as is any input shorter than the window.
//
// The input slice is never modified; the returned slice is a fresh copy.
func UnmaskXOR(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)

	for i := format.XORWindow; i < len(out); i++ {
		out[i] ^= out[i-format.XORWindow]
	}

	return out
}
