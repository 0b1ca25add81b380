package schema_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoglyph/wirecodec/schema"
	"github.com/protoglyph/wirecodec/schema/enum"
	"github.com/protoglyph/wirecodec/wire/werr"
)

// inner is a minimal nested record used to exercise schema.Message.
type inner struct {
	V int32
}

func (i *inner) fields() (*schema.RecordDescriptor, error) {
	return schema.NewRecord(schema.Int32(1, "v", &i.V))
}

func (i *inner) Encode(w io.Writer) error {
	rd, err := i.fields()
	if err != nil {
		return err
	}
	return schema.EncodeRecord(w, rd)
}

func (i *inner) Decode(r io.Reader) error {
	rd, err := i.fields()
	if err != nil {
		return err
	}
	return schema.DecodeRecord(r, rd)
}

var _ schema.Record = (*inner)(nil)

func TestMessageRoundTrip(t *testing.T) {
	src := inner{V: 123}
	b := encodeField(t, schema.Message[inner](1, "sub", &src))

	var dst inner
	rd, err := schema.NewRecord(schema.Message[inner](1, "sub", &dst))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	assert.Equal(t, src, dst)
}

// color is a tiny enum type used to exercise schema.Enum.
type color int

const (
	colorRed color = iota
	colorGreen
	colorBlue
)

func colorToRaw(v color) uint64 { return uint64(v) }

func colorFromRaw(raw uint64) (color, error) {
	switch color(raw) {
	case colorRed, colorGreen, colorBlue:
		return color(raw), nil
	default:
		return 0, enum.NotDeclared(raw)
	}
}

func TestEnumRoundTrip(t *testing.T) {
	src := colorGreen
	b := encodeField(t, schema.Enum(1, "c", &src, colorToRaw, colorFromRaw))

	var dst color
	rd, err := schema.NewRecord(schema.Enum(1, "c", &dst, colorToRaw, colorFromRaw))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	assert.Equal(t, src, dst)
}

func TestEnumRejectsUndeclaredVariant(t *testing.T) {
	var raw uint64 = 99
	var src int32 = int32(raw)
	b := encodeField(t, schema.Int32(1, "c", &src))

	var dst color
	rd, err := schema.NewRecord(schema.Enum(1, "c", &dst, colorToRaw, colorFromRaw))
	require.NoError(t, err)
	err = schema.DecodeRecord(bytes.NewReader(b), rd)
	assert.ErrorIs(t, err, werr.ErrInvalidEnum)
}

func TestRepeatedRoundTrip(t *testing.T) {
	src := []uint32{1, 2, 3, 4}
	b := encodeField(t, schema.Repeated[uint32](1, "rep", &src, schema.UInt32))

	var dst []uint32
	rd, err := schema.NewRecord(schema.Repeated[uint32](1, "rep", &dst, schema.UInt32))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	assert.Equal(t, src, dst)
}

func TestRepeatedEmptyEmitsNothing(t *testing.T) {
	var src []uint32
	b := encodeField(t, schema.Repeated[uint32](1, "rep", &src, schema.UInt32))
	assert.Empty(t, b)
}

func TestOptionalAbsentEmitsNothing(t *testing.T) {
	var src *int32
	b := encodeField(t, schema.Optional[int32](1, "v", &src, schema.Int32))
	assert.Empty(t, b)
}

func TestOptionalPresentRoundTrip(t *testing.T) {
	v := int32(42)
	src := &v
	b := encodeField(t, schema.Optional[int32](1, "v", &src, schema.Int32))

	var dst *int32
	rd, err := schema.NewRecord(schema.Optional[int32](1, "v", &dst, schema.Int32))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	require.NotNil(t, dst)
	assert.Equal(t, v, *dst)
}
