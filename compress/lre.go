package compress

import (
	"github.com/divetools/swiftgps/format"
)

const (
	lreCodeBits    = 9     // width of one packed code
	lreEndMarker   = 0     // code that terminates a block
	lreLiteralBase = 0x100 // codes at or above this emit the literal byte code & 0xFF
	lreMaxRun      = 0xFF  // longest zero run a single code can emit
)

// zeroRun is the shared source slice for expanding zero-run codes.
var zeroRun [lreMaxRun]byte

// DecodeBlock expands the 9-bit run-length codes of a single compressed
// block into bytes.
//
// Codes are read most significant bit first until the end marker (code 0)
// or until fewer than 9 bits remain, whichever comes first. Codes 1-255
// emit that many zero bytes; codes 256-511 emit the single literal byte
// code & 0xFF.
//
// The decoder is length-agnostic: callers normally pass one 144-byte block
// at a time, but shorter (truncated) blocks simply yield the codes that
// fit. Partial output is valid output.
//
// Parameters:
//   - block: One compressed block, at most format.BlockSize bytes
//
// Returns:
//   - []byte: The expanded bytes, empty when the block starts with the end
//     marker or holds no complete code
func DecodeBlock(block []byte) []byte {
	out := make([]byte, 0, format.BlockSize)
	br := newBitReader(block)

	for {
		code, ok := br.readBits(lreCodeBits)
		if !ok {
			// Fewer than 9 bits left; the tail is padding.
			return out
		}

		switch {
		case code == lreEndMarker:
			return out
		case code >= lreLiteralBase:
			out = append(out, byte(code&lreMaxRun))
		default:
			out = append(out, zeroRun[:code]...)
		}
	}
}
