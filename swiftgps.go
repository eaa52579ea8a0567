// Package swiftgps decodes GPS fixes from Shearwater dive-computer memory.
//
// Shearwater computers paired with a Swift AI transmitter log the GPS
// position of the dive entry and exit, but the fixes are buried in the raw
// device memory that sync tools mirror into their databases: run-length
// packed in 9-bit codes per 144-byte block, XOR-masked at a 32-byte
// distance, and scattered over fixed 32-byte records. This package ties
// the decoding stages together and recovers those fixes.
//
// # Basic Usage
//
// Extracting the fixes from a raw dive payload:
//
//	import "github.com/divetools/swiftgps"
//
//	gps, ok := swiftgps.Extract(rawDump)
//	if !ok {
//	    // no GPS on this dive: transmitter off, no satellite lock,
//	    // or a pre-GPS log format
//	}
//	fmt.Println("entry:", gps.Entry)
//	if gps.HasExit {
//	    fmt.Println("exit:", gps.Exit)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the compress
// and record packages, which do the heavy lifting. The macdive, geocode,
// and backfill packages build a MacDive database backfill workflow on top
// of the decoder; they are not needed for plain decoding.
package swiftgps

import (
	"github.com/divetools/swiftgps/compress"
	"github.com/divetools/swiftgps/record"
)

// Extract decompresses a raw dive payload and scans it for GPS fixes.
//
// It is shorthand for record.Extract(compress.Decompress(raw)). The second
// return value is false when the payload carries no usable fix: the
// transmitter mode never reached record-with-GPS, no non-sentinel entry
// coordinate was logged, or the payload is too short to hold a dive.
//
// Extract never returns an error and never panics; undecodable input is
// simply reported as "no fix".
func Extract(raw []byte) (record.GPS, bool) {
	return record.Extract(compress.Decompress(raw))
}

// Decompress reverses the device's block packing and XOR masking and
// returns the plain 32-byte record stream of a raw dive payload.
//
// Most callers want Extract; Decompress is for tools that inspect other
// record types themselves, typically via record.Records.
func Decompress(raw []byte) []byte {
	return compress.Decompress(raw)
}
