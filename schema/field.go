// Package schema implements the field codec dispatch (spec §4.3), the
// record codec loop (spec §4.4), and the schema-binding mechanism
// (spec §4.5) that ties a field's numeric id and logical prototype to
// a concrete slot in a caller's struct.
//
// There is no code generator here: per design note §9, the binding
// layer is realized as a builder API. Each FieldDescriptor constructor
// closes over a pointer into the caller's struct and returns a value
// carrying bound encode/decode closures; a record's Encode/Decode
// methods simply replay the descriptor list through EncodeRecord and
// DecodeRecord.
package schema

import (
	"io"
	"math"

	"github.com/protoglyph/wirecodec/prototype"
	"github.com/protoglyph/wirecodec/wire"
	"github.com/protoglyph/wirecodec/wire/werr"
)

// FieldDescriptor binds a single record member to a wire field: its
// numeric id, its declared logical prototype, and the closures that
// know how to read and write that particular slot.
type FieldDescriptor struct {
	ID        uint64
	Name      string
	Prototype prototype.ProtoType

	encode func(w io.Writer) error
	decode func(wt prototype.WireType, r io.Reader) error
}

// ElemCtor builds a FieldDescriptor for a single element of type T at
// the given id/name, bound to slot. Every scalar constructor in this
// file has this shape, which is what lets Repeated and Optional wrap
// any of them generically.
type ElemCtor[T any] func(id uint64, name string, slot *T) FieldDescriptor

func expectWireType(pt prototype.ProtoType, observed prototype.WireType, name string) error {
	want, ok := pt.WireType()
	if !ok || observed != want {
		return werr.TypeMismatch("field " + name + ": expected wire type for " + pt.String() + ", got " + observed.String())
	}
	return nil
}

// Int32 binds an int32 slot as INT32 (raw signed varint, no zigzag).
func Int32(id uint64, name string, slot *int32) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Int32,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteSignedVarint(w, int64(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Int32, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadSignedVarint(r)
			if err != nil {
				return err
			}
			*slot = int32(v)
			return nil
		},
	}
}

// SInt32 binds an int32 slot as SINT32 (zigzag varint).
func SInt32(id uint64, name string, slot *int32) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.SInt32,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteUvarint(w, wire.EncodeZigZag32(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.SInt32, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadUvarint(r)
			if err != nil {
				return err
			}
			*slot = wire.DecodeZigZag32(v)
			return nil
		},
	}
}

// SFixed32 binds an int32 slot as SFIXED32 (four little-endian bytes).
func SFixed32(id uint64, name string, slot *int32) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.SFixed32,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.I32); err != nil {
				return err
			}
			return wire.WriteFixed32(w, uint32(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.SFixed32, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadFixed32(r)
			if err != nil {
				return err
			}
			*slot = int32(v)
			return nil
		},
	}
}

// Int64 binds an int64 slot as INT64 (raw signed varint).
func Int64(id uint64, name string, slot *int64) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Int64,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteSignedVarint(w, *slot)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Int64, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadSignedVarint(r)
			if err != nil {
				return err
			}
			*slot = v
			return nil
		},
	}
}

// SInt64 binds an int64 slot as SINT64 (zigzag varint).
func SInt64(id uint64, name string, slot *int64) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.SInt64,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteUvarint(w, wire.EncodeZigZag64(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.SInt64, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadUvarint(r)
			if err != nil {
				return err
			}
			*slot = wire.DecodeZigZag64(v)
			return nil
		},
	}
}

// SFixed64 binds an int64 slot as SFIXED64 (eight little-endian bytes).
func SFixed64(id uint64, name string, slot *int64) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.SFixed64,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.I64); err != nil {
				return err
			}
			return wire.WriteFixed64(w, uint64(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.SFixed64, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadFixed64(r)
			if err != nil {
				return err
			}
			*slot = int64(v)
			return nil
		},
	}
}

// UInt32 binds a uint32 slot as UINT32 (varint).
func UInt32(id uint64, name string, slot *uint32) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.UInt32,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteUvarint(w, uint64(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.UInt32, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadUvarint(r)
			if err != nil {
				return err
			}
			if v > math.MaxUint32 {
				return werr.Overflow("field " + name + ": value does not fit uint32")
			}
			*slot = uint32(v)
			return nil
		},
	}
}

// Fixed32 binds a uint32 slot as FIXED32 (four little-endian bytes).
func Fixed32(id uint64, name string, slot *uint32) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Fixed32,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.I32); err != nil {
				return err
			}
			return wire.WriteFixed32(w, *slot)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Fixed32, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadFixed32(r)
			if err != nil {
				return err
			}
			*slot = v
			return nil
		},
	}
}

// UInt64 binds a uint64 slot as UINT64 (varint).
func UInt64(id uint64, name string, slot *uint64) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.UInt64,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteUvarint(w, *slot)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.UInt64, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadUvarint(r)
			if err != nil {
				return err
			}
			*slot = v
			return nil
		},
	}
}

// Fixed64 binds a uint64 slot as FIXED64 (eight little-endian bytes).
func Fixed64(id uint64, name string, slot *uint64) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Fixed64,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.I64); err != nil {
				return err
			}
			return wire.WriteFixed64(w, *slot)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Fixed64, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadFixed64(r)
			if err != nil {
				return err
			}
			*slot = v
			return nil
		},
	}
}

// Bool binds a bool slot as BOOL (varint; nonzero is true).
func Bool(id uint64, name string, slot *bool) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Bool,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			n := uint64(0)
			if *slot {
				n = 1
			}
			return wire.WriteUvarint(w, n)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Bool, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadUvarint(r)
			if err != nil {
				return err
			}
			*slot = v != 0
			return nil
		},
	}
}

// Float32 binds a float32 slot as FLOAT (IEEE-754 bits, I32 wire).
func Float32(id uint64, name string, slot *float32) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Float,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.I32); err != nil {
				return err
			}
			return wire.WriteFixed32(w, math.Float32bits(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Float, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadFixed32(r)
			if err != nil {
				return err
			}
			*slot = math.Float32frombits(v)
			return nil
		},
	}
}

// Float64 binds a float64 slot as DOUBLE (IEEE-754 bits, I64 wire).
func Float64(id uint64, name string, slot *float64) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Double,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.I64); err != nil {
				return err
			}
			return wire.WriteFixed64(w, math.Float64bits(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Double, wt, name); err != nil {
				return err
			}
			v, err := wire.ReadFixed64(r)
			if err != nil {
				return err
			}
			*slot = math.Float64frombits(v)
			return nil
		},
	}
}
