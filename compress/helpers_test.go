package compress

import (
	"github.com/divetools/swiftgps/format"
)

// packCodes packs 9-bit codes MSB first, padding the final byte with zero
// bits, mirroring how the device lays codes out inside a block.
func packCodes(codes ...uint16) []byte {
	var (
		out    []byte
		bitBuf uint32
		nbits  int
	)

	for _, code := range codes {
		bitBuf = bitBuf<<9 | uint32(code&0x1FF)
		nbits += 9

		for nbits >= 8 {
			out = append(out, byte(bitBuf>>(nbits-8)))
			nbits -= 8
		}
	}

	if nbits > 0 {
		out = append(out, byte(bitBuf<<(8-nbits)))
	}

	return out
}

// maskXOR applies the forward rolling mask, the inverse of UnmaskXOR. It
// reads every term from the unmodified input, which is what makes it the
// true inverse of the cumulative unmask pass.
func maskXOR(plain []byte) []byte {
	out := make([]byte, len(plain))
	copy(out, plain)

	for i := format.XORWindow; i < len(plain); i++ {
		out[i] = plain[i] ^ plain[i-format.XORWindow]
	}

	return out
}

// encodeImage builds a raw device payload that Decompress restores to
// stream: the masked bytes are packed as literal codes, 128 per block, so
// every full block is exactly format.BlockSize bytes.
func encodeImage(stream []byte) []byte {
	masked := maskXOR(stream)

	var raw []byte

	for start := 0; start < len(masked); start += 128 {
		end := start + 128
		if end > len(masked) {
			end = len(masked)
		}

		codes := make([]uint16, 0, 128)
		for _, b := range masked[start:end] {
			codes = append(codes, lreLiteralBase|uint16(b))
		}

		raw = append(raw, packCodes(codes...)...)
	}

	return raw
}
