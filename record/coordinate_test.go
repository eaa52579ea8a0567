package record

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCoordinate_Scaling(t *testing.T) {
	c, ok := NewCoordinate(4027500, -7412345)
	require.True(t, ok)
	require.InDelta(t, 40.27500, c.Lat, 1e-9)
	require.InDelta(t, -74.12345, c.Lon, 1e-9)
}

func TestNewCoordinate_Sentinels(t *testing.T) {
	_, ok := NewCoordinate(0, 0)
	require.False(t, ok, "all-zero pair means no satellite lock yet")

	_, ok = NewCoordinate(-1, -1)
	require.False(t, ok, "all-ones pair means GPS disabled")
}

func TestNewCoordinate_SentinelsMatchAsPairs(t *testing.T) {
	// A single zero or -1 component is a legal fix on the equator, the
	// prime meridian, or just south-west of them.
	c, ok := NewCoordinate(0, -7412345)
	require.True(t, ok)
	require.InDelta(t, 0.0, c.Lat, 1e-9)

	c, ok = NewCoordinate(4027500, 0)
	require.True(t, ok)
	require.InDelta(t, 0.0, c.Lon, 1e-9)

	_, ok = NewCoordinate(-1, 0)
	require.True(t, ok)

	_, ok = NewCoordinate(0, -1)
	require.True(t, ok)
}

func TestCoordinate_String(t *testing.T) {
	c, ok := NewCoordinate(4027500, -7412345)
	require.True(t, ok)
	require.Equal(t, "40.27500, -74.12345", c.String())
}

func TestCoordinate_LatLng(t *testing.T) {
	c, ok := NewCoordinate(4027500, -7412345)
	require.True(t, ok)

	ll := c.LatLng()
	require.True(t, ll.IsValid())
	require.InDelta(t, 40.27500, ll.Lat.Degrees(), 1e-9)
	require.InDelta(t, -74.12345, ll.Lng.Degrees(), 1e-9)
}
