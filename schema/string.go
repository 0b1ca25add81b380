package schema

import (
	"io"
	"unicode/utf8"

	"github.com/protoglyph/wirecodec/prototype"
	"github.com/protoglyph/wirecodec/wire"
	"github.com/protoglyph/wirecodec/wire/werr"
)

// String binds a string slot as STRING (LEN-framed, must be valid UTF-8
// on decode).
func String(id uint64, name string, slot *string) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.String,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Len); err != nil {
				return err
			}
			return wire.WriteLenDelimited(w, []byte(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.String, wt, name); err != nil {
				return err
			}
			b, err := wire.ReadLenDelimited(r)
			if err != nil {
				return err
			}
			if !utf8.Valid(b) {
				return werr.InvalidUTF8("field " + name + ": payload is not valid utf-8")
			}
			*slot = string(b)
			return nil
		},
	}
}

// Bytes binds a []byte slot as BYTES (LEN-framed, raw payload).
func Bytes(id uint64, name string, slot *[]byte) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Bytes,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Len); err != nil {
				return err
			}
			return wire.WriteLenDelimited(w, *slot)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Bytes, wt, name); err != nil {
				return err
			}
			b, err := wire.ReadLenDelimited(r)
			if err != nil {
				return err
			}
			if len(b) == 0 {
				b = nil
			}
			*slot = b
			return nil
		},
	}
}
