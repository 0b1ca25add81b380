// Package examplepb carries the worked schema from spec.md §8 as a
// concrete, tested record pair: Sub, nested inside Msg, exercising
// INT32, INT64, SINT32, BOOL, DOUBLE, STRING and BYTES scalars, a
// nested MESSAGE, and a repeated UINT32.
//
//	Sub { (id=1, int32) int32: i32 }
//	Msg { (id=1, int32) int32: i32, (id=2, int64) int64: i64,
//	      (id=5, sint32) s: i32, (id=7, bool) b: bool,
//	      (id=12, double) d: f64, (id=14, string) s2: string,
//	      (id=16, bytes) bs: bytes, (id=19, message) sub: Sub,
//	      (id=20, uint32) rep: list<u32> }
package examplepb

import (
	"io"

	"github.com/protoglyph/wirecodec/schema"
)

// Sub is the nested message referenced by Msg.Sub.
type Sub struct {
	Int32 int32
}

func (s *Sub) fields() (*schema.RecordDescriptor, error) {
	return schema.NewRecord(
		schema.Int32(1, "int32", &s.Int32),
	)
}

func (s *Sub) Encode(w io.Writer) error {
	rd, err := s.fields()
	if err != nil {
		return err
	}
	return schema.EncodeRecord(w, rd)
}

func (s *Sub) Decode(r io.Reader) error {
	rd, err := s.fields()
	if err != nil {
		return err
	}
	return schema.DecodeRecord(r, rd)
}

// Msg is the top-level record from spec.md §8.
type Msg struct {
	Int32 int32
	Int64 int64
	S     int32 // bound as SINT32
	B     bool
	D     float64
	S2    string
	BS    []byte
	Sub   Sub
	Rep   []uint32
}

func (m *Msg) fields() (*schema.RecordDescriptor, error) {
	return schema.NewRecord(
		schema.Int32(1, "int32", &m.Int32),
		schema.Int64(2, "int64", &m.Int64),
		schema.SInt32(5, "s", &m.S),
		schema.Bool(7, "b", &m.B),
		schema.Float64(12, "d", &m.D),
		schema.String(14, "s2", &m.S2),
		schema.Bytes(16, "bs", &m.BS),
		schema.Message[Sub](19, "sub", &m.Sub),
		schema.Repeated[uint32](20, "rep", &m.Rep, schema.UInt32),
	)
}

func (m *Msg) Encode(w io.Writer) error {
	rd, err := m.fields()
	if err != nil {
		return err
	}
	return schema.EncodeRecord(w, rd)
}

func (m *Msg) Decode(r io.Reader) error {
	rd, err := m.fields()
	if err != nil {
		return err
	}
	return schema.DecodeRecord(r, rd)
}

var (
	_ schema.Record = (*Sub)(nil)
	_ schema.Record = (*Msg)(nil)
)
