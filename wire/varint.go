// Package wire implements the primitive byte-level codec and the tag
// framing described in spec §4.1–§4.2: unsigned/signed varint, zigzag,
// little-endian fixed-width, and the (field_id, wire_type) tag.
//
// The shape of this package forks jhump/protoreflect's codec.Buffer
// (varint loop, tag encode/decode, fixed32/64, zigzag), adapted from an
// in-memory byte-slice buffer to streaming io.Reader/io.Writer, and with
// the overflow bounding codec.Buffer's unrolled decode loop already did
// for EncodeVarint's counterpart made explicit and testable here too.
package wire

import (
	"errors"
	"io"

	"github.com/protoglyph/wirecodec/prototype"
	"github.com/protoglyph/wirecodec/wire/werr"
)

// maxVarintBytes is the longest a canonical 64-bit varint can be.
const maxVarintBytes = 10

func readByte(r io.Reader) (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// WriteUvarint writes n as a little-endian base-128 varint. Zero
// encodes as the single byte 0x00; the encoder never emits a trailing
// continuation byte (it is canonical).
func WriteUvarint(w io.Writer, n uint64) error {
	var buf [maxVarintBytes]byte
	i := 0
	for n >= 0x80 {
		buf[i] = byte(n) | 0x80
		n >>= 7
		i++
	}
	buf[i] = byte(n)
	i++
	_, err := w.Write(buf[:i])
	if err != nil {
		return werr.IO(err)
	}
	return nil
}

// ReadUvarint reads a base-128 varint, accumulating 7-bit groups until a
// byte with a clear high bit. It returns io.EOF, unwrapped, only when
// the very first byte of the varint could not be read (a clean stream
// boundary); any later EOF is io.ErrUnexpectedEOF, matching spec §4.2:
// "If EOF occurs mid-varint, this is a decode error." Varints longer
// than 10 bytes, or whose final byte would require more than bit 63,
// fail with werr.Overflow (spec §9 open question 3).
func ReadUvarint(r io.Reader) (uint64, error) {
	var x uint64
	var shift uint
	for i := 0; i < maxVarintBytes; i++ {
		b, err := readByte(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				if i == 0 {
					return 0, io.EOF
				}
				return 0, io.ErrUnexpectedEOF
			}
			return 0, werr.IO(err)
		}
		if i == maxVarintBytes-1 && b&0xfe != 0 {
			// The 10th byte may only ever contribute bit 63; anything
			// else (including a set continuation bit) overflows.
			return 0, werr.Overflow("varint exceeds 64 bits")
		}
		x |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return x, nil
		}
		shift += 7
	}
	return 0, werr.Overflow("varint exceeds 10 bytes")
}

// WriteSignedVarint writes n by reinterpreting its two's-complement bit
// pattern as a uint64 and writing that as an unsigned varint. This is
// the raw INT32/INT64 encoding (no zigzag), so small negative values
// produce the full 10-byte sequence (e.g. -2 -> fe ff ff ff ff ff ff ff
// ff 01, spec §4.1).
func WriteSignedVarint(w io.Writer, n int64) error {
	return WriteUvarint(w, uint64(n))
}

// ReadSignedVarint reads an unsigned varint and reinterprets it as int64.
func ReadSignedVarint(r io.Reader) (int64, error) {
	v, err := ReadUvarint(r)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// EncodeZigZag32 maps a signed 32-bit integer to an unsigned value whose
// varint encoding is short for small magnitudes in either direction.
func EncodeZigZag32(n int32) uint64 {
	return uint64(uint32(n<<1) ^ uint32(n>>31))
}

// DecodeZigZag32 is the inverse of EncodeZigZag32.
func DecodeZigZag32(v uint64) int32 {
	u := uint32(v)
	return int32(u>>1) ^ (int32(u&1) << 31 >> 31)
}

// EncodeZigZag64 maps a signed 64-bit integer to an unsigned value whose
// varint encoding is short for small magnitudes in either direction.
func EncodeZigZag64(n int64) uint64 {
	return (uint64(n) << 1) ^ uint64(n>>63)
}

// DecodeZigZag64 is the inverse of EncodeZigZag64.
func DecodeZigZag64(v uint64) int64 {
	return int64(v>>1) ^ (int64(v&1) << 63 >> 63)
}

// WriteTag writes the (field_id, wire_type) pair as a single unsigned
// varint: (id << 3) | wire_type.
func WriteTag(w io.Writer, id uint64, wt prototype.WireType) error {
	return WriteUvarint(w, (id<<3)|uint64(wt))
}

// ReadTag reads a tag varint and splits it into field id and wire type.
// ok is false, with a nil error, exactly when the stream ended cleanly
// at the tag boundary (spec §4.2's "no more fields" sentinel); any
// other failure, including an invalid wire type, is returned as err.
func ReadTag(r io.Reader) (id uint64, wt prototype.WireType, ok bool, err error) {
	v, err := ReadUvarint(r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, 0, false, nil
		}
		return 0, 0, false, err
	}
	rawWT := prototype.WireType(v & 0x7)
	if !rawWT.Valid() {
		return 0, 0, false, werr.InvalidWireType("observed wire type " + rawWT.String())
	}
	return v >> 3, rawWT, true, nil
}
