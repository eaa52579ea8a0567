package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		fp   uint64
	}{
		{"empty payload", nil, 0xef46db3751d8e999},
		{"short payload", []byte("test"), 0x4fdcca5ddb678139},
		{"longer payload", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fp, Fingerprint(tt.data))
		})
	}
}

func TestFingerprint_DistinguishesPayloads(t *testing.T) {
	a := Fingerprint([]byte{0x14, 0x00, 0x01})
	b := Fingerprint([]byte{0x14, 0x00, 0x02})
	assert.NotEqual(t, a, b)
}
