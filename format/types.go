package format

type (
	RecordType      uint8
	TransmitterMode uint8
)

const (
	RecordOpening4 RecordType = 0x14 // RecordOpening4 carries dive settings, including the transmitter mode.
	RecordOpening9 RecordType = 0x19 // RecordOpening9 carries the GPS fix captured at the dive start.
	RecordClosing9 RecordType = 0x29 // RecordClosing9 carries the GPS fix captured at the dive end.

	ModeGPS TransmitterMode = 6 // ModeGPS means air integration is on with GPS logging enabled.
)

func (t RecordType) String() string {
	switch t {
	case RecordOpening4:
		return "Opening4"
	case RecordOpening9:
		return "Opening9"
	case RecordClosing9:
		return "Closing9"
	default:
		return "Unknown"
	}
}

func (m TransmitterMode) String() string {
	if m == ModeGPS {
		return "AIOnGPS"
	}

	return "Unknown"
}
