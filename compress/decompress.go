package compress

import (
	"github.com/divetools/swiftgps/format"
)

// Decompress reverses both device transforms and returns the plain record
// stream for a raw dive payload.
//
// The payload is split into format.BlockSize chunks (the final chunk may be
// shorter), each chunk is run-length expanded with DecodeBlock, and the
// concatenated output is XOR-unmasked. The result is scanned by the record
// package in 32-byte strides.
//
// Decompress is deterministic and pure: it never modifies the input, never
// returns an error, and maps nil or empty input to empty output.
//
// Example:
//
//	stream := compress.Decompress(rawDump)
//	if len(stream) == 0 {
//	    // nothing usable in this payload
//	}
func Decompress(raw []byte) []byte {
	var masked []byte

	for start := 0; start < len(raw); start += format.BlockSize {
		end := start + format.BlockSize
		if end > len(raw) {
			end = len(raw)
		}

		masked = append(masked, DecodeBlock(raw[start:end])...)
	}

	return UnmaskXOR(masked)
}
