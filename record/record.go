package record

import (
	"encoding/binary"
	"iter"

	"github.com/divetools/swiftgps/format"
)

// Record is a read-only view over one 32-byte record of a decompressed
// stream. Accessors read fixed offsets; which fields are meaningful
// depends on Type.
type Record struct {
	data []byte
}

// Records returns an iterator over the 32-byte records of a decompressed
// stream. Windows are aligned to format.RecordSize from offset 0; a
// trailing partial window is ignored.
//
// Example:
//
//	for rec := range record.Records(stream) {
//	    if rec.Type() == format.RecordOpening9 {
//	        // ...
//	    }
//	}
func Records(stream []byte) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for start := 0; start+format.RecordSize <= len(stream); start += format.RecordSize {
			if !yield(Record{data: stream[start : start+format.RecordSize]}) {
				return
			}
		}
	}
}

// Type returns the record type identifier.
func (r Record) Type() format.RecordType {
	return format.RecordType(r.data[format.OffType])
}

// LogVersion returns the log format version byte of an opening record.
func (r Record) LogVersion() uint8 {
	return r.data[format.OffLogVersion]
}

// Mode returns the transmitter mode byte. It is meaningful only on
// Opening4 records whose LogVersion is format.GPSLogVersion or later.
func (r Record) Mode() format.TransmitterMode {
	return format.TransmitterMode(r.data[format.OffMode])
}

// GPS decodes the coordinate fields of an Opening9 or Closing9 record.
// Returns false when the record holds a sentinel "no fix" pair.
func (r Record) GPS() (Coordinate, bool) {
	rawLat := int32(binary.BigEndian.Uint32(r.data[format.OffLatitude : format.OffLatitude+4]))
	rawLon := int32(binary.BigEndian.Uint32(r.data[format.OffLongitude : format.OffLongitude+4]))

	return NewCoordinate(rawLat, rawLon)
}
