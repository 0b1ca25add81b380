package wire

import (
	"io"

	"github.com/protoglyph/wirecodec/wire/werr"
)

// WriteFixed32 writes x as four little-endian bytes (spec §4.1: the
// format for fixed32, sfixed32 and float).
func WriteFixed32(w io.Writer, x uint32) error {
	buf := [4]byte{byte(x), byte(x >> 8), byte(x >> 16), byte(x >> 24)}
	if _, err := w.Write(buf[:]); err != nil {
		return werr.IO(err)
	}
	return nil
}

// ReadFixed32 reads four little-endian bytes into a uint32.
func ReadFixed32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, unexpectedEOF(err)
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// WriteFixed64 writes x as eight little-endian bytes (spec §4.1: the
// format for fixed64, sfixed64 and double).
func WriteFixed64(w io.Writer, x uint64) error {
	buf := [8]byte{
		byte(x), byte(x >> 8), byte(x >> 16), byte(x >> 24),
		byte(x >> 32), byte(x >> 40), byte(x >> 48), byte(x >> 56),
	}
	if _, err := w.Write(buf[:]); err != nil {
		return werr.IO(err)
	}
	return nil
}

// ReadFixed64 reads eight little-endian bytes into a uint64.
func ReadFixed64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, unexpectedEOF(err)
	}
	x := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
		uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56
	return x, nil
}

func unexpectedEOF(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return io.ErrUnexpectedEOF
	}
	return werr.IO(err)
}
