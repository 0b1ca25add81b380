package prototype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/protoglyph/wirecodec/prototype"
)

func TestWireTypeValid(t *testing.T) {
	valid := []prototype.WireType{prototype.Varint, prototype.I64, prototype.Len, prototype.I32}
	for _, wt := range valid {
		assert.True(t, wt.Valid(), wt.String())
	}
	reserved := []prototype.WireType{3, 4, 6, 7}
	for _, wt := range reserved {
		assert.False(t, wt.Valid(), wt.String())
	}
}

func TestProtoTypeWireTypeTable(t *testing.T) {
	cases := []struct {
		pt   prototype.ProtoType
		want prototype.WireType
	}{
		{prototype.Int32, prototype.Varint},
		{prototype.Int64, prototype.Varint},
		{prototype.UInt32, prototype.Varint},
		{prototype.UInt64, prototype.Varint},
		{prototype.SInt32, prototype.Varint},
		{prototype.SInt64, prototype.Varint},
		{prototype.Bool, prototype.Varint},
		{prototype.Enum, prototype.Varint},
		{prototype.Fixed64, prototype.I64},
		{prototype.SFixed64, prototype.I64},
		{prototype.Double, prototype.I64},
		{prototype.Fixed32, prototype.I32},
		{prototype.SFixed32, prototype.I32},
		{prototype.Float, prototype.I32},
		{prototype.String, prototype.Len},
		{prototype.Bytes, prototype.Len},
		{prototype.Message, prototype.Len},
	}
	for _, tc := range cases {
		got, ok := tc.pt.WireType()
		assert.True(t, ok, tc.pt.String())
		assert.Equal(t, tc.want, got, tc.pt.String())
	}
}

func TestOtherHasNoFixedWireType(t *testing.T) {
	_, ok := prototype.Other.WireType()
	assert.False(t, ok)
}
