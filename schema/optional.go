package schema

import (
	"io"

	"github.com/protoglyph/wirecodec/prototype"
)

// Optional binds a *T slot as an optional single value (spec §4.3:
// "Absent value emits nothing. Presence on the wire sets the slot to
// the read value, replacing any prior"). slot is a pointer to a
// pointer: nil means absent, matching the common Go idiom for an
// optional scalar (there being no Option<T> in the language).
func Optional[T any](id uint64, name string, slot **T, elem ElemCtor[T]) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: elem(id, name, new(T)).Prototype,
		encode: func(w io.Writer) error {
			if *slot == nil {
				return nil
			}
			return elem(id, name, *slot).encode(w)
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			*slot = new(T)
			return elem(id, name, *slot).decode(wt, r)
		},
	}
}
