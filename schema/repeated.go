package schema

import (
	"io"

	"github.com/protoglyph/wirecodec/prototype"
)

// Repeated binds a []T slot as an unpacked repeated field (spec §4.3:
// "Encoded as unpacked: one tagged occurrence per element ... Decoded
// by appending to the slot each time that id is observed"). elem is any
// constructor with the ElemCtor shape (the scalar constructors in
// field.go and string.go, or Message instantiated for a record type),
// reused to encode or decode one element at a time. Enum takes extra
// conversion arguments, so it has to be wrapped in a closure of that
// shape. An empty slice emits nothing.
func Repeated[T any](id uint64, name string, slot *[]T, elem ElemCtor[T]) FieldDescriptor {
	return FieldDescriptor{ID: id, Name: name, Prototype: elem(id, name, new(T)).Prototype,
		encode: func(w io.Writer) error {
			s := *slot
			for i := range s {
				if err := elem(id, name, &s[i]).encode(w); err != nil {
					return err
				}
			}
			return nil
		},
		decode: func(wt prototype.WireType, r io.Reader) error {
			*slot = append(*slot, *new(T))
			last := &(*slot)[len(*slot)-1]
			return elem(id, name, last).decode(wt, r)
		},
	}
}
