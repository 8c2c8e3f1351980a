package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLaneKind(t *testing.T) {
	tests := []struct {
		kind   LaneKind
		bits   int
		signed bool
		float  bool
		str    string
	}{
		{Int8, 8, true, false, "int8"},
		{Uint8, 8, false, false, "uint8"},
		{Int16, 16, true, false, "int16"},
		{Uint16, 16, false, false, "uint16"},
		{Int32, 32, true, false, "int32"},
		{Uint32, 32, false, false, "uint32"},
		{Int64, 64, true, false, "int64"},
		{Uint64, 64, false, false, "uint64"},
		{Float32, 32, false, true, "float32"},
		{Float64, 64, false, true, "float64"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.bits, tc.kind.Bits(), tc.str)
		assert.Equal(t, tc.signed, tc.kind.Signed(), tc.str)
		assert.Equal(t, tc.float, tc.kind.Float(), tc.str)
		assert.Equal(t, tc.str, tc.kind.String())
	}
}

func TestVectorKindGeometry(t *testing.T) {
	// lane count x lane width must equal the vector width for every shape;
	// spot-check one shape per width.
	assert.Equal(t, 64, U8x8{}.Lanes()*U8x8{}.Kind().Bits())
	assert.Equal(t, 128, F64x2{}.Lanes()*F64x2{}.Kind().Bits())
	assert.Equal(t, 256, I16x16{}.Lanes()*I16x16{}.Kind().Bits())
	assert.Equal(t, 512, U64x8{}.Lanes()*U64x8{}.Kind().Bits())

	assert.Equal(t, Uint32, NewU32x4(0, 0, 0, 0).Kind())
	assert.Equal(t, Float32, SplatF32x16(0).Kind())
}
