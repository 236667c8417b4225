package bytesutil_test

import (
	"bytes"
	"testing"

	"github.com/castellanlabs/castellan/encoding/bytesutil"
	"github.com/castellanlabs/castellan/testing/assert"
)

func TestToBytes4_Truncates(t *testing.T) {
	got := bytesutil.ToBytes4([]byte{1, 2, 3, 4, 5, 6})
	assert.Equal(t, [4]byte{1, 2, 3, 4}, got)
}

func TestToBytes32_PadsShortInput(t *testing.T) {
	got := bytesutil.ToBytes32([]byte{0xff})
	want := [32]byte{0xff}
	assert.Equal(t, want, got)
}

func TestBytes8_LittleEndian(t *testing.T) {
	tests := []struct {
		a uint64
		b []byte
	}{
		{0, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{256, []byte{0, 1, 0, 0, 0, 0, 0, 0}},
		{16777216, []byte{0, 0, 0, 1, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if !bytes.Equal(bytesutil.Bytes8(tt.a), tt.b) {
			t.Errorf("Bytes8(%d) = %v, wanted %v", tt.a, bytesutil.Bytes8(tt.a), tt.b)
		}
	}
}

func TestPadTo(t *testing.T) {
	b := bytesutil.PadTo([]byte{1, 2}, 4)
	assert.DeepEqual(t, []byte{1, 2, 0, 0}, b)

	// Oversized input is returned untouched.
	in := []byte{1, 2, 3, 4, 5}
	assert.DeepEqual(t, in, bytesutil.PadTo(in, 4))
}

func TestSafeCopyBytes(t *testing.T) {
	assert.DeepEqual(t, []byte(nil), bytesutil.SafeCopyBytes(nil))

	in := []byte{1, 2, 3}
	cp := bytesutil.SafeCopyBytes(in)
	assert.DeepEqual(t, in, cp)
	cp[0] = 9
	assert.Equal(t, uint8(1), in[0])
}
