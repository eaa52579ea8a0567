// Package record scans decompressed Shearwater record streams and
// recovers the GPS fixes and transmitter mode of a dive.
//
// # Record Layout
//
// A decompressed stream is a sequence of fixed 32-byte records. The first
// byte identifies the record type; the fields this package reads depend on
// it:
//
//	┌────────┬──────┬─────────────────────────────────────────────┐
//	│ offset │ size │ field                                       │
//	├────────┼──────┼─────────────────────────────────────────────┤
//	│ 0      │ 1    │ record type                                 │
//	│ 16     │ 1    │ log format version (Opening4)               │
//	│ 21     │ 4    │ latitude, big-endian signed, deg x 1e5      │
//	│ 25     │ 4    │ longitude, big-endian signed, deg x 1e5     │
//	│ 28     │ 1    │ transmitter mode (Opening4, version >= 7)   │
//	└────────┴──────┴─────────────────────────────────────────────┘
//
// Coordinate fields appear on Opening9 (dive start) and Closing9 (dive
// end) records. The mode byte appears on Opening4 records, and only log
// format version 7 or later places it at offset 28, so older openings are
// ignored rather than misread.
//
// # Sentinels
//
// The device writes coordinate fields even without a satellite lock. Two
// raw pairs mean "no fix": (0, 0) before the first lock, and (-1, -1)
// when GPS is off. Records carrying a sentinel are skipped, so a real fix
// seen earlier in the stream survives them.
//
// # Extraction Rules
//
// Extract keeps the last valid value of each field it sees. A dive yields
// a result only when its final transmitter mode is ModeGPS and at least an
// entry fix was captured; the exit fix is optional because batteries die
// and divers surface out of satellite view.
package record
