package wire

import (
	"bytes"
	"io"

	"github.com/protoglyph/wirecodec/prototype"
	"github.com/protoglyph/wirecodec/wire/werr"
)

// WriteLenDelimited writes b prefixed with its length as an unsigned
// varint (spec §4.1 "LEN-framed").
func WriteLenDelimited(w io.Writer, b []byte) error {
	if err := WriteUvarint(w, uint64(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := w.Write(b); err != nil {
		return werr.IO(err)
	}
	return nil
}

// ReadLenDelimited reads a varint length prefix followed by that many
// payload bytes.
func ReadLenDelimited(r io.Reader) ([]byte, error) {
	n, err := ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, unexpectedEOF(err)
	}
	return buf, nil
}

// Skip consumes and discards a single field's payload according to its
// wire type, implementing the unknown-field skip semantics of spec
// §4.4: VARINT reads and drops one unsigned varint, I32/I64 discard
// their fixed byte counts, LEN reads its length prefix and discards
// that many bytes.
func Skip(r io.Reader, wt prototype.WireType) error {
	switch wt {
	case prototype.Varint:
		_, err := ReadUvarint(r)
		return err
	case prototype.I32:
		_, err := ReadFixed32(r)
		return err
	case prototype.I64:
		_, err := ReadFixed64(r)
		return err
	case prototype.Len:
		_, err := ReadLenDelimited(r)
		return err
	default:
		return werr.InvalidWireType("cannot skip unrecognized wire type")
	}
}

// BufferMessage serializes a nested record to a temporary in-memory
// buffer before it is LEN-framed into the outer sink, per spec §4.3:
// "serialize to a temporary buffer first, then write tag, length,
// bytes." The buffer is transient and is released when this function
// returns, per the resource-ownership model in spec §5.
func BufferMessage(encode func(io.Writer) error) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
