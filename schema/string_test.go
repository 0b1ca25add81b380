package schema_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/protoglyph/wirecodec/schema"
	"github.com/protoglyph/wirecodec/wire"
	"github.com/protoglyph/wirecodec/wire/werr"
)

func TestStringRoundTrip(t *testing.T) {
	src := "héllo wörld"
	b := encodeField(t, schema.String(1, "v", &src))

	var dst string
	rd, err := schema.NewRecord(schema.String(1, "v", &dst))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	assert.Equal(t, src, dst)
}

func TestStringEmptyRoundTrip(t *testing.T) {
	src := ""
	b := encodeField(t, schema.String(1, "v", &src))

	var dst string
	rd, err := schema.NewRecord(schema.String(1, "v", &dst))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	assert.Equal(t, "", dst)
}

func TestStringInvalidUTF8Rejected(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.WriteTag(&buf, 1, 2))
	require.NoError(t, wire.WriteLenDelimited(&buf, []byte{0xc3, 0x28}))

	var dst string
	rd, err := schema.NewRecord(schema.String(1, "v", &dst))
	require.NoError(t, err)
	err = schema.DecodeRecord(&buf, rd)
	assert.ErrorIs(t, err, werr.ErrInvalidUTF8)
}

func TestBytesRoundTrip(t *testing.T) {
	src := []byte{0x00, 0xff, 0x10, 0x20}
	b := encodeField(t, schema.Bytes(1, "v", &src))

	var dst []byte
	rd, err := schema.NewRecord(schema.Bytes(1, "v", &dst))
	require.NoError(t, err)
	require.NoError(t, schema.DecodeRecord(bytes.NewReader(b), rd))
	assert.Equal(t, src, dst)
}
