package record

import (
	"github.com/divetools/swiftgps/format"
)

// GPS holds the fixes recovered from one dive.
type GPS struct {
	Entry   Coordinate
	Exit    Coordinate
	HasExit bool
}

// minStreamLen is the shortest stream worth scanning: under two records
// the stream cannot carry both a mode and a fix.
const minStreamLen = 2 * format.RecordSize

// Extract scans a decompressed record stream and returns the GPS fixes of
// the dive it logs.
//
// The scan applies the rules described in the package documentation:
// Opening4 records with log version format.GPSLogVersion or later capture
// the transmitter mode, Opening9 and Closing9 records with non-sentinel
// coordinates capture the entry and exit fix, and the last captured value
// of each field wins. Records of other types, sentinel fixes, and openings
// older than the version gate are skipped without disturbing earlier
// captures.
//
// Returns false when the stream is shorter than two records, when the
// final mode is not format.ModeGPS, or when no entry fix was captured.
// Extract never panics, whatever bytes it is handed.
func Extract(stream []byte) (GPS, bool) {
	if len(stream) < minStreamLen {
		return GPS{}, false
	}

	var (
		gps      GPS
		mode     format.TransmitterMode
		hasEntry bool
	)

	for rec := range Records(stream) {
		switch rec.Type() {
		case format.RecordOpening4:
			if rec.LogVersion() >= format.GPSLogVersion {
				mode = rec.Mode()
			}
		case format.RecordOpening9:
			if c, ok := rec.GPS(); ok {
				gps.Entry = c
				hasEntry = true
			}
		case format.RecordClosing9:
			if c, ok := rec.GPS(); ok {
				gps.Exit = c
				gps.HasExit = true
			}
		}
	}

	if mode != format.ModeGPS || !hasEntry {
		return GPS{}, false
	}

	return gps, true
}
