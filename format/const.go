package format

// Sizes and strides of the on-device log structures, in bytes.
const (
	BlockSize  = 144 // compressed block stride in the raw dive payload
	RecordSize = 32  // fixed record stride in the decompressed stream
	XORWindow  = 32  // rolling mask distance of the second decompression stage
)

// Field offsets within a 32-byte record.
const (
	OffType       = 0  // record type identifier
	OffLogVersion = 16 // log format version (opening records)
	OffLatitude   = 21 // big-endian signed latitude, degrees x 1e5
	OffLongitude  = 25 // big-endian signed longitude, degrees x 1e5
	OffMode       = 28 // transmitter mode (opening records, version >= GPSLogVersion)
)

const (
	// GPSLogVersion is the first log format version whose opening records
	// carry the transmitter mode field.
	GPSLogVersion = 7

	// CoordinateScale converts the raw fixed-point coordinate fields to
	// decimal degrees.
	CoordinateScale = 100000.0
)
