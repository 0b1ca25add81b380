package schema

import (
	"io"

	"github.com/protoglyph/wirecodec/prototype"
	"github.com/protoglyph/wirecodec/schema/enum"
	"github.com/protoglyph/wirecodec/wire"
)

// Enum binds an ENUM slot: VARINT wire, raw numeric value, with variant
// validation delegated to fromRaw (spec §4.3: "variant validation is
// delegated to the concrete enum type").
func Enum[E any](id uint64, name string, slot *E, toRaw enum.ToRawFunc[E], fromRaw enum.FromRawFunc[E]) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: prototype.Enum,
		encode: func(w io.Writer) error {
			if err := wire.WriteTag(w, id, prototype.Varint); err != nil {
				return err
			}
			return wire.WriteUvarint(w, toRaw(*slot))
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			if err := expectWireType(prototype.Enum, wt, name); err != nil {
				return err
			}
			raw, err := wire.ReadUvarint(r)
			if err != nil {
				return err
			}
			v, err := fromRaw(raw)
			if err != nil {
				return err
			}
			*slot = v
			return nil
		},
	}
}
