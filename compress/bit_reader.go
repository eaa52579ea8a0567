package compress

import (
	"encoding/binary"
)

// bitReader extracts bit groups from a byte slice, most significant bit
// first, matching the bit order the device packs its 9-bit codes in.
type bitReader struct {
	data     []byte // Source data
	bytePos  int    // Current byte position
	bitBuf   uint64 // Buffer holding current bits
	bitCount int    // Number of valid bits in buffer
}

// newBitReader creates a new bit reader for the given data.
func newBitReader(data []byte) *bitReader {
	return &bitReader{
		data: data,
	}
}

// readBits reads numBits bits from the stream.
//
// Returns:
//   - The bits as a uint64 (right-aligned) and true if successful
//   - Zero and false if insufficient data is available
func (br *bitReader) readBits(numBits int) (uint64, bool) {
	if numBits == 0 {
		return 0, true
	}

	if numBits <= br.bitCount {
		shift := 64 - numBits
		result := br.bitBuf >> shift
		br.bitBuf <<= numBits
		br.bitCount -= numBits

		return result, true
	}

	var result uint64
	firstRead := true

	for numBits > 0 {
		if br.bitCount == 0 {
			if !br.fillBuffer() {
				return 0, false
			}
		}

		// Determine how many bits we can read from current buffer
		bitsToRead := numBits
		if bitsToRead > br.bitCount {
			bitsToRead = br.bitCount
		}

		// Extract bits from most significant position
		shift := 64 - bitsToRead
		shiftedBits := br.bitBuf >> shift

		// Accumulate result
		if firstRead {
			result = shiftedBits
			firstRead = false
		} else {
			result = (result << bitsToRead) | shiftedBits
		}

		// Update buffer
		br.bitBuf <<= bitsToRead
		br.bitCount -= bitsToRead
		numBits -= bitsToRead
	}

	return result, true
}

// fillBuffer refills the bit buffer from the byte stream.
//
// Reads up to 8 bytes and left-aligns them in the 64-bit buffer so bits are
// always extracted from the MSB. Returns false if no more data is available.
func (br *bitReader) fillBuffer() bool {
	if br.bytePos >= len(br.data) {
		return false
	}

	bytesAvailable := len(br.data) - br.bytePos
	bytesToRead := 8
	if bytesToRead > bytesAvailable {
		bytesToRead = bytesAvailable
	}

	// Fast path: read full 8 bytes using binary.BigEndian
	if bytesToRead == 8 {
		br.bitBuf = binary.BigEndian.Uint64(br.data[br.bytePos : br.bytePos+8])
		br.bytePos += 8
		br.bitCount = 64

		return true
	}

	// Slow path: read partial bytes
	br.bitBuf = 0
	for i := 0; i < bytesToRead; i++ {
		br.bitBuf = (br.bitBuf << 8) | uint64(br.data[br.bytePos])
		br.bytePos++
	}

	// Left-align the bits if we read less than 8 bytes
	br.bitBuf <<= (8 - bytesToRead) * 8
	br.bitCount = bytesToRead * 8

	return true
}
