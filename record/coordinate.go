package record

import (
	"fmt"

	"github.com/golang/geo/s2"

	"github.com/divetools/swiftgps/format"
)

// Coordinate is a decoded GPS position in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate converts the raw fixed-point coordinate fields of a record
// into decimal degrees.
//
// Returns false for the two sentinel pairs the device writes when it has
// no fix: (0, 0) before the first satellite lock and (-1, -1) when GPS is
// disabled. The sentinels are matched as a pair, so a genuine fix with a
// single zero component (on the equator or prime meridian) is kept.
func NewCoordinate(rawLat, rawLon int32) (Coordinate, bool) {
	if rawLat == 0 && rawLon == 0 {
		return Coordinate{}, false
	}

	if rawLat == -1 && rawLon == -1 {
		return Coordinate{}, false
	}

	return Coordinate{
		Lat: float64(rawLat) / format.CoordinateScale,
		Lon: float64(rawLon) / format.CoordinateScale,
	}, true
}

// String formats the coordinate with the five decimal places the raw
// fields carry.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lon)
}

// LatLng returns the position as an s2.LatLng for spherical geometry and
// validity checks.
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Lat, c.Lon)
}
