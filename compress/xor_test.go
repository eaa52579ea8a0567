package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/divetools/swiftgps/format"
)

func TestUnmaskXOR_ShortInputPassesThrough(t *testing.T) {
	require.Empty(t, UnmaskXOR(nil))

	in := []byte{0x01, 0x02, 0x03}
	require.Equal(t, in, UnmaskXOR(in))

	// Exactly one window is still below the first masked offset.
	window := bytes.Repeat([]byte{0xAB}, format.XORWindow)
	require.Equal(t, window, UnmaskXOR(window))
}

func TestUnmaskXOR_RestoresRepeatedRecords(t *testing.T) {
	// Two identical 32-byte records mask to record + zeros.
	masked := append(bytes.Repeat([]byte{0xAA}, 32), make([]byte, 32)...)

	out := UnmaskXOR(masked)
	require.Equal(t, bytes.Repeat([]byte{0xAA}, 64), out)
}

func TestUnmaskXOR_CumulativeAcrossWindows(t *testing.T) {
	// Byte 64 is masked against the restored byte 32, not the raw input.
	masked := make([]byte, 65)
	masked[0] = 0x0F
	masked[32] = 0xF0 // restores to 0xF0 ^ 0x0F = 0xFF
	masked[64] = 0xFF // restores to 0xFF ^ 0xFF = 0x00

	out := UnmaskXOR(masked)
	require.Equal(t, byte(0x0F), out[0])
	require.Equal(t, byte(0xFF), out[32])
	require.Equal(t, byte(0x00), out[64])
}

func TestUnmaskXOR_DoesNotModifyInput(t *testing.T) {
	in := bytes.Repeat([]byte{0x5A}, 100)
	saved := bytes.Clone(in)

	UnmaskXOR(in)
	require.Equal(t, saved, in)
}

func TestUnmaskXOR_RoundTrip(t *testing.T) {
	plain := []byte("a plain record stream long enough to span the mask window twice over")
	require.Equal(t, plain, UnmaskXOR(maskXOR(plain)))
}

func TestUnmaskXOR_RoundTripArbitrary(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		plain := rapid.SliceOf(rapid.Byte()).Draw(t, "plain")
		require.Equal(t, plain, UnmaskXOR(maskXOR(plain)))
	})
}
