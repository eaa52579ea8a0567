// Package compress implements the two-stage decompression applied to raw
// Shearwater dive-computer memory before any record can be read.
//
// # Overview
//
// A raw dive payload as stored by the device (and mirrored into dive-log
// databases by sync tools) is not a plain record stream. It is produced by
// two layered transforms, which this package reverses in order:
//
//  1. Run-length extraction (LRE): the payload is divided into fixed
//     144-byte blocks, each holding a sequence of 9-bit codes that expand
//     into literal bytes and zero runs.
//  2. XOR masking: the concatenated block output is masked against itself
//     at a fixed 32-byte distance, so that most bytes store only the
//     difference from the byte one record earlier.
//
// The pipeline is:
//
//	raw payload ──DecodeBlock per 144-byte block──> masked stream
//	masked stream ──UnmaskXOR──> record stream (32-byte records)
//
// Decompress runs both stages. The result is consumed by the record
// package, which scans it in 32-byte strides.
//
// # Run-Length Extraction
//
// Each block is read as a bit stream, most significant bit first, in 9-bit
// codes:
//
//	code 0          end of block; remaining bits are padding
//	codes 1-255     run of that many zero bytes
//	codes 256-511   single literal byte (code & 0xFF)
//
// Reading stops when fewer than 9 bits remain, so trailing padding never
// produces output. Dive records are mostly zero bytes, which is why a
// zero-run code pays for itself: a 255-byte run of zeros costs 9 bits.
//
// # XOR Unmasking
//
// The second stage undoes a difference transform: each byte from offset
// 32 onward was XORed by the encoder with the plain byte 32 positions
// earlier. Unmasking therefore walks the buffer in ascending order,
// applying
//
//	out[i] ^= out[i-32]
//
// over a single working copy, so later bytes see the already-restored
// values they were masked against. The first 32 bytes pass through
// unchanged.
//
// # Error Handling
//
// Device dumps are routinely truncated or padded, so nothing in this
// package returns an error or panics. Malformed input degrades to shorter
// output: a truncated block yields the codes that fit, and an empty or nil
// payload yields an empty stream. Callers detect "no usable data" by the
// length of the result.
package compress
